package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"worker-calculator/internal/domain"
	"worker-calculator/pkg/payroll"
)

type ShiftServiceImpl struct {
	Repo    domain.ShiftRepo
	Workers domain.WorkerRepo
	// NewID defaults to uuid.NewString.
	NewID func() string
}

var _ domain.ShiftService = (*ShiftServiceImpl)(nil)

func (s *ShiftServiceImpl) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// AddShift validates shift, assigns an id when it has none and stores it.
func (s *ShiftServiceImpl) AddShift(ctx context.Context, chatID int64, shift payroll.Shift) (payroll.Shift, error) {
	if shift.ID == "" {
		shift.ID = s.newID()
	}
	if err := payroll.ValidateShift(shift); err != nil {
		return payroll.Shift{}, err
	}
	if err := s.Repo.AddShift(ctx, chatID, shift); err != nil {
		return payroll.Shift{}, fmt.Errorf("add shift: %w", err)
	}
	return shift, nil
}

func (s *ShiftServiceImpl) DeleteShift(ctx context.Context, chatID int64, id string) error {
	return s.Repo.DeleteShift(ctx, chatID, id)
}

func (s *ShiftServiceImpl) ClearShifts(ctx context.Context, chatID int64) (int64, error) {
	return s.Repo.DeleteAllShifts(ctx, chatID)
}

func (s *ShiftServiceImpl) ListShifts(ctx context.Context, chatID int64) ([]payroll.Shift, error) {
	return s.Repo.ListShifts(ctx, chatID)
}

// GenerateWeeks applies a weekly schedule and stores the new shifts. Dates
// that already have a shift are left alone.
func (s *ShiftServiceImpl) GenerateWeeks(ctx context.Context, chatID int64, schedule payroll.WeeklySchedule, start time.Time, weeks int) ([]payroll.Shift, error) {
	existing, err := s.Repo.ListShifts(ctx, chatID)
	if err != nil {
		return nil, err
	}
	generated := payroll.GenerateShifts(schedule, start, weeks, existing, s.newID)
	if len(generated) == 0 {
		return nil, nil
	}
	if err := s.Repo.AddShifts(ctx, chatID, generated); err != nil {
		return nil, fmt.Errorf("store generated shifts: %w", err)
	}
	return generated, nil
}

// ImportShifts stores a batch of shifts in one transaction. Every shift is
// validated first and given a fresh id, so nothing is stored unless the
// whole batch is valid.
func (s *ShiftServiceImpl) ImportShifts(ctx context.Context, chatID int64, shifts []payroll.Shift) ([]payroll.Shift, error) {
	batch := make([]payroll.Shift, 0, len(shifts))
	for _, shift := range shifts {
		if err := payroll.ValidateShift(shift); err != nil {
			return nil, err
		}
		shift.ID = s.newID()
		batch = append(batch, shift)
	}
	if len(batch) == 0 {
		return nil, nil
	}
	if err := s.Repo.AddShifts(ctx, chatID, batch); err != nil {
		return nil, fmt.Errorf("import shifts: %w", err)
	}
	return batch, nil
}

// LaborData loads the worker and every stored shift for chatID.
func (s *ShiftServiceImpl) LaborData(ctx context.Context, chatID int64) (payroll.LaborData, error) {
	data, err := s.workerData(ctx, chatID)
	if err != nil {
		return data, err
	}
	data.Shifts, err = s.Repo.ListShifts(ctx, chatID)
	return data, err
}

// MonthLaborData is LaborData restricted to the shifts dated in month.
func (s *ShiftServiceImpl) MonthLaborData(ctx context.Context, chatID int64, year int, month time.Month) (payroll.LaborData, error) {
	data, err := s.workerData(ctx, chatID)
	if err != nil {
		return data, err
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, -1)
	data.Shifts, err = s.Repo.GetShifts(ctx, chatID, from, to)
	return data, err
}

func (s *ShiftServiceImpl) workerData(ctx context.Context, chatID int64) (payroll.LaborData, error) {
	var data payroll.LaborData
	w, err := s.Workers.GetWorker(ctx, chatID)
	switch {
	case err == nil:
		data.WorkerName = w.Name
		data.MonthlySalary = w.MonthlySalary
	case !errors.Is(err, domain.ErrWorkerNotFound):
		return data, err
	}
	return data, nil
}
