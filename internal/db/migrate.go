package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Every statement is idempotent so the
// full list re-runs safely on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS process_steps (
		id          TEXT PRIMARY KEY,
		date        TEXT NOT NULL,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0
	)`,

	`CREATE INDEX IF NOT EXISTS idx_process_steps_date
		ON process_steps(date, order_index)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		step_id     TEXT NOT NULL REFERENCES process_steps(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		details     TEXT NOT NULL DEFAULT '',
		resources   TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_step
		ON tasks(step_id, order_index)`,

	`CREATE TABLE IF NOT EXISTS baker_tasks (
		id          TEXT PRIMARY KEY,
		baker_id    TEXT NOT NULL,
		date        TEXT NOT NULL,
		name        TEXT NOT NULL,
		start_at    TEXT NOT NULL,
		end_at      TEXT NOT NULL,
		details     TEXT NOT NULL DEFAULT '',
		equipment   TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT 'pending'
		            CHECK(status IN ('pending','in_progress','done')),
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_baker_tasks_baker_date
		ON baker_tasks(baker_id, date, order_index)`,

	`CREATE TABLE IF NOT EXISTS task_dependencies (
		baker_task_id TEXT NOT NULL REFERENCES baker_tasks(id) ON DELETE CASCADE,
		position      INTEGER NOT NULL,
		from_baker    TEXT NOT NULL,
		message       TEXT NOT NULL,
		urgent        INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (baker_task_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS orders (
		id         TEXT PRIMARY KEY,
		customer   TEXT NOT NULL,
		product    TEXT NOT NULL,
		quantity   INTEGER NOT NULL,
		due_date   TEXT,
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
}
