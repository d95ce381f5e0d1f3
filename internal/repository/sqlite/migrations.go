package sqlite

import (
	"database/sql"
)

const createShiftsTable = `
CREATE TABLE IF NOT EXISTS shifts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    chat_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    entry_time TEXT NOT NULL,
    exit_time TEXT NOT NULL,
    daytime_extra REAL NOT NULL DEFAULT 0,
    nighttime_extra REAL NOT NULL DEFAULT 0,
    sunday_extra REAL NOT NULL DEFAULT 0,
    sunday_night_extra REAL NOT NULL DEFAULT 0
);
`

const createShiftsIndex = `
CREATE INDEX IF NOT EXISTS idx_shifts_chat_date ON shifts (chat_id, date);
`

const createWorkersTable = `
CREATE TABLE IF NOT EXISTS workers (
    chat_id INTEGER PRIMARY KEY,
    name TEXT NOT NULL DEFAULT '',
    monthly_salary REAL NOT NULL DEFAULT 0
);
`

const createSchedulesTable = `
CREATE TABLE IF NOT EXISTS schedules (
    chat_id INTEGER PRIMARY KEY,
    days TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	for _, stmt := range []string{createShiftsTable, createShiftsIndex, createWorkersTable, createSchedulesTable} {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
