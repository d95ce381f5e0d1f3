package workerpool

import (
	"context"
	"errors"
	"sync"
)

var ErrClosed = errors.New("workerpool: closed")

// Task is a unit of work for the pool. Fn must be safe to run concurrently
// with other tasks. ResultC, when set, receives exactly one Result and should
// be buffered so a worker never blocks on a caller that gave up waiting.
type Task struct {
	Fn      func() (any, error)
	ResultC chan Result
}

type Result struct {
	Value any
	Err   error
}

type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

// NewWorkerPool starts workerCount workers reading from a queue of queueSize.
func NewWorkerPool(workerCount int, queueSize int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	wp := &WorkerPool{
		tasks:  make(chan Task, queueSize),
		ctx:    ctx,
		cancel: cancel,
	}
	wp.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go wp.worker()
	}
	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for {
		select {
		case <-wp.ctx.Done():
			return
		case task := <-wp.tasks:
			res, err := task.Fn()
			if task.ResultC != nil {
				task.ResultC <- Result{Value: res, Err: err}
			}
		}
	}
}

// Submit queues a task, blocking while the queue is full. It gives up when
// ctx is done or the pool is closed.
func (wp *WorkerPool) Submit(ctx context.Context, task Task) error {
	select {
	case <-wp.ctx.Done():
		return ErrClosed
	default:
	}

	select {
	case wp.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-wp.ctx.Done():
		return ErrClosed
	}
}

// Close stops the workers and waits for running tasks to return. Queued
// tasks that have not started are dropped.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.cancel()
		wp.wg.Wait()
	})
}
