package sqlite

import (
	"context"
	"database/sql"
	"time"

	"worker-calculator/internal/domain"
	"worker-calculator/internal/model"
	"worker-calculator/pkg/payroll"
)

const shiftColumns = `seq, id, chat_id, date, entry_time, exit_time, daytime_extra, nighttime_extra, sunday_extra, sunday_night_extra`

const insertShift = `
INSERT INTO shifts (id, chat_id, date, entry_time, exit_time, daytime_extra, nighttime_extra, sunday_extra, sunday_night_extra)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

type SqliteShiftRepo struct {
	db *sql.DB
}

func NewSqliteShiftRepo(db *sql.DB) *SqliteShiftRepo {
	return &SqliteShiftRepo{db: db}
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insert(ctx context.Context, ex execer, chatID int64, shift payroll.Shift) error {
	r := model.FromShift(chatID, shift)
	_, err := ex.ExecContext(ctx, insertShift,
		r.ID, r.ChatID, r.Date, r.EntryTime, r.ExitTime,
		r.DaytimeExtra, r.NighttimeExtra, r.SundayExtra, r.SundayNightExtra,
	)
	return err
}

func (r *SqliteShiftRepo) AddShift(ctx context.Context, chatID int64, shift payroll.Shift) error {
	return insert(ctx, r.db, chatID, shift)
}

// AddShifts stores all shifts or none.
func (r *SqliteShiftRepo) AddShifts(ctx context.Context, chatID int64, shifts []payroll.Shift) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, s := range shifts {
		if err := insert(ctx, tx, chatID, s); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListShifts returns a chat's shifts in the order they were added.
func (r *SqliteShiftRepo) ListShifts(ctx context.Context, chatID int64) ([]payroll.Shift, error) {
	return r.query(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE chat_id = ? ORDER BY seq`,
		chatID,
	)
}

func (r *SqliteShiftRepo) GetShifts(ctx context.Context, chatID int64, from, to time.Time) ([]payroll.Shift, error) {
	return r.query(ctx,
		`SELECT `+shiftColumns+` FROM shifts WHERE chat_id = ? AND date BETWEEN ? AND ? ORDER BY seq`,
		chatID,
		from.Format(payroll.DateLayout),
		to.Format(payroll.DateLayout),
	)
}

func (r *SqliteShiftRepo) query(ctx context.Context, q string, args ...any) ([]payroll.Shift, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []payroll.Shift
	for rows.Next() {
		var rec model.ShiftRecord
		if err := rows.Scan(
			&rec.Seq, &rec.ID, &rec.ChatID, &rec.Date, &rec.EntryTime, &rec.ExitTime,
			&rec.DaytimeExtra, &rec.NighttimeExtra, &rec.SundayExtra, &rec.SundayNightExtra,
		); err != nil {
			return nil, err
		}
		s, err := rec.Shift()
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *SqliteShiftRepo) DeleteShift(ctx context.Context, chatID int64, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE chat_id = ? AND id = ?`, chatID, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrShiftNotFound
	}
	return nil
}

func (r *SqliteShiftRepo) DeleteAllShifts(ctx context.Context, chatID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM shifts WHERE chat_id = ?`, chatID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
