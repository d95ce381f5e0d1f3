package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"worker-calculator/internal/domain"
	"worker-calculator/pkg/payroll"
)

type WorkerService struct {
	Repo      domain.WorkerRepo
	Schedules domain.ScheduleRepo
}

func NewWorkerService(repo domain.WorkerRepo, schedules domain.ScheduleRepo) *WorkerService {
	return &WorkerService{Repo: repo, Schedules: schedules}
}

// EnsureWorker returns the stored worker for chatID, creating it with name
// when there is none yet.
func (s *WorkerService) EnsureWorker(ctx context.Context, chatID int64, name string) (domain.Worker, error) {
	w, err := s.Repo.GetWorker(ctx, chatID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, domain.ErrWorkerNotFound) {
		return domain.Worker{}, err
	}
	w = domain.Worker{ChatID: chatID, Name: strings.TrimSpace(name)}
	if err := s.Repo.SaveWorker(ctx, w); err != nil {
		return domain.Worker{}, err
	}
	return w, nil
}

// GetWorker returns an unconfigured worker instead of ErrWorkerNotFound.
func (s *WorkerService) GetWorker(ctx context.Context, chatID int64) (domain.Worker, error) {
	w, err := s.Repo.GetWorker(ctx, chatID)
	if errors.Is(err, domain.ErrWorkerNotFound) {
		return domain.Worker{ChatID: chatID}, nil
	}
	return w, err
}

func (s *WorkerService) SetSalary(ctx context.Context, chatID int64, salary float64) error {
	if err := payroll.ValidateSalary(salary); err != nil {
		return err
	}
	w, err := s.GetWorker(ctx, chatID)
	if err != nil {
		return err
	}
	w.MonthlySalary = salary
	if err := s.Repo.SaveWorker(ctx, w); err != nil {
		return fmt.Errorf("save salary: %w", err)
	}
	return nil
}

func (s *WorkerService) SetName(ctx context.Context, chatID int64, name string) error {
	w, err := s.GetWorker(ctx, chatID)
	if err != nil {
		return err
	}
	w.Name = strings.TrimSpace(name)
	if err := s.Repo.SaveWorker(ctx, w); err != nil {
		return fmt.Errorf("save name: %w", err)
	}
	return nil
}

// Schedule returns the chat's weekly template, or the default one when the
// chat has never edited it.
func (s *WorkerService) Schedule(ctx context.Context, chatID int64) (payroll.WeeklySchedule, error) {
	schedule, err := s.Schedules.GetSchedule(ctx, chatID)
	if errors.Is(err, domain.ErrScheduleNotFound) {
		return payroll.DefaultWeeklySchedule(), nil
	}
	return schedule, err
}

// SetScheduleDay sets the hours of one weekday (0 is Monday) and marks it
// active.
func (s *WorkerService) SetScheduleDay(ctx context.Context, chatID int64, day int, entry, exit string) (payroll.WeeklySchedule, error) {
	if day < 0 || day >= len(payroll.WeeklySchedule{}) {
		return payroll.WeeklySchedule{}, fmt.Errorf("day %d out of range", day)
	}
	if err := payroll.ValidateClock(entry); err != nil {
		return payroll.WeeklySchedule{}, err
	}
	if err := payroll.ValidateClock(exit); err != nil {
		return payroll.WeeklySchedule{}, err
	}
	return s.updateSchedule(ctx, chatID, func(schedule *payroll.WeeklySchedule) {
		schedule[day] = payroll.DaySchedule{Entry: entry, Exit: exit, Active: true}
	})
}

// ToggleScheduleDay switches one weekday between working and free, keeping
// its hours.
func (s *WorkerService) ToggleScheduleDay(ctx context.Context, chatID int64, day int) (payroll.WeeklySchedule, error) {
	if day < 0 || day >= len(payroll.WeeklySchedule{}) {
		return payroll.WeeklySchedule{}, fmt.Errorf("day %d out of range", day)
	}
	return s.updateSchedule(ctx, chatID, func(schedule *payroll.WeeklySchedule) {
		schedule[day].Active = !schedule[day].Active
	})
}

func (s *WorkerService) updateSchedule(ctx context.Context, chatID int64, edit func(*payroll.WeeklySchedule)) (payroll.WeeklySchedule, error) {
	schedule, err := s.Schedule(ctx, chatID)
	if err != nil {
		return payroll.WeeklySchedule{}, err
	}
	edit(&schedule)
	if err := s.Schedules.SaveSchedule(ctx, chatID, schedule); err != nil {
		return payroll.WeeklySchedule{}, fmt.Errorf("save schedule: %w", err)
	}
	return schedule, nil
}
