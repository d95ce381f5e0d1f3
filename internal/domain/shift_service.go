package domain

import (
	"context"
	"time"

	"worker-calculator/pkg/payroll"
)

type ShiftService interface {
	AddShift(ctx context.Context, chatID int64, shift payroll.Shift) (payroll.Shift, error)
	DeleteShift(ctx context.Context, chatID int64, id string) error
	ClearShifts(ctx context.Context, chatID int64) (int64, error)
	ListShifts(ctx context.Context, chatID int64) ([]payroll.Shift, error)
	GenerateWeeks(ctx context.Context, chatID int64, schedule payroll.WeeklySchedule, start time.Time, weeks int) ([]payroll.Shift, error)
	ImportShifts(ctx context.Context, chatID int64, shifts []payroll.Shift) ([]payroll.Shift, error)
	LaborData(ctx context.Context, chatID int64) (payroll.LaborData, error)
	MonthLaborData(ctx context.Context, chatID int64, year int, month time.Month) (payroll.LaborData, error)
}
