package service

import (
	"context"

	"worker-calculator/pkg/payroll"
	"worker-calculator/pkg/workerpool"
)

// AsyncService runs work on the shared worker pool so bot handlers never
// build summaries or reports on the update goroutine.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{
		Fn:      fn,
		ResultC: resCh,
	}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Summary computes the pay summary for data on the pool.
func (a *AsyncService) Summary(ctx context.Context, data payroll.LaborData) (payroll.PaySummary, error) {
	v, err := a.SubmitAsync(ctx, func() (any, error) {
		return data.Summary(), nil
	})
	if err != nil {
		return payroll.PaySummary{}, err
	}
	return v.(payroll.PaySummary), nil
}
