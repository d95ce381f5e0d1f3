package domain

import (
	"context"
	"errors"
	"time"

	"worker-calculator/pkg/payroll"
)

var ErrShiftNotFound = errors.New("shift not found")

type ShiftRepo interface {
	AddShift(ctx context.Context, chatID int64, shift payroll.Shift) error
	AddShifts(ctx context.Context, chatID int64, shifts []payroll.Shift) error
	ListShifts(ctx context.Context, chatID int64) ([]payroll.Shift, error)
	GetShifts(ctx context.Context, chatID int64, from, to time.Time) ([]payroll.Shift, error)
	DeleteShift(ctx context.Context, chatID int64, id string) error
	DeleteAllShifts(ctx context.Context, chatID int64) (int64, error)
}
