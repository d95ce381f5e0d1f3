package domain

import (
	"context"
	"errors"

	"worker-calculator/pkg/payroll"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepo keeps the weekly template each chat edits in the bot.
type ScheduleRepo interface {
	GetSchedule(ctx context.Context, chatID int64) (payroll.WeeklySchedule, error)
	SaveSchedule(ctx context.Context, chatID int64, schedule payroll.WeeklySchedule) error
}
