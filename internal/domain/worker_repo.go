package domain

import (
	"context"
	"errors"
)

var ErrWorkerNotFound = errors.New("worker not found")

type WorkerRepo interface {
	GetWorker(ctx context.Context, chatID int64) (Worker, error)
	SaveWorker(ctx context.Context, w Worker) error
}

// Worker is the per-chat owner of a shift list. A MonthlySalary of zero
// means it has not been set yet.
type Worker struct {
	ChatID        int64
	Name          string
	MonthlySalary float64
}
