package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"worker-calculator/internal/domain"
	"worker-calculator/pkg/payroll"
)

// SqliteScheduleRepo stores each chat's weekly template as one JSON document.
type SqliteScheduleRepo struct {
	db *sql.DB
}

func NewSqliteScheduleRepo(db *sql.DB) *SqliteScheduleRepo {
	return &SqliteScheduleRepo{db: db}
}

func (r *SqliteScheduleRepo) GetSchedule(ctx context.Context, chatID int64) (payroll.WeeklySchedule, error) {
	var raw string
	err := r.db.QueryRowContext(ctx,
		`SELECT days FROM schedules WHERE chat_id = ?`, chatID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return payroll.WeeklySchedule{}, domain.ErrScheduleNotFound
	}
	if err != nil {
		return payroll.WeeklySchedule{}, err
	}
	var schedule payroll.WeeklySchedule
	if err := json.Unmarshal([]byte(raw), &schedule); err != nil {
		return payroll.WeeklySchedule{}, fmt.Errorf("decode schedule for chat %d: %w", chatID, err)
	}
	return schedule, nil
}

func (r *SqliteScheduleRepo) SaveSchedule(ctx context.Context, chatID int64, schedule payroll.WeeklySchedule) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO schedules (chat_id, days) VALUES (?, ?)
         ON CONFLICT(chat_id) DO UPDATE SET days = excluded.days`,
		chatID, string(raw),
	)
	return err
}
