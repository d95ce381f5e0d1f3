package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"worker-calculator/internal/domain"
)

type SqliteWorkerRepo struct {
	db *sql.DB
}

func NewSqliteWorkerRepo(db *sql.DB) *SqliteWorkerRepo {
	return &SqliteWorkerRepo{db: db}
}

func (r *SqliteWorkerRepo) GetWorker(ctx context.Context, chatID int64) (domain.Worker, error) {
	var w domain.Worker
	err := r.db.QueryRowContext(ctx,
		`SELECT chat_id, name, monthly_salary FROM workers WHERE chat_id = ?`, chatID,
	).Scan(&w.ChatID, &w.Name, &w.MonthlySalary)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Worker{}, domain.ErrWorkerNotFound
	}
	return w, err
}

func (r *SqliteWorkerRepo) SaveWorker(ctx context.Context, w domain.Worker) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE workers SET name = ?, monthly_salary = ? WHERE chat_id = ?`,
		w.Name, w.MonthlySalary, w.ChatID,
	)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		_, err = r.db.ExecContext(ctx,
			`INSERT INTO workers (chat_id, name, monthly_salary) VALUES (?, ?, ?)`,
			w.ChatID, w.Name, w.MonthlySalary,
		)
		return err
	}
	return nil
}
