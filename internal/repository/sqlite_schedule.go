package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ovenware/bakeboard/internal/domain"
)

const taskColumns = `id, step_id, name, start_at, end_at, details, resources, order_index, created_at`

// SQLiteScheduleRepo implements ScheduleRepo using a SQLite database.
type SQLiteScheduleRepo struct {
	db *sql.DB
}

// NewSQLiteScheduleRepo creates a new SQLiteScheduleRepo.
func NewSQLiteScheduleRepo(db *sql.DB) *SQLiteScheduleRepo {
	return &SQLiteScheduleRepo{db: db}
}

func (r *SQLiteScheduleRepo) CreateStep(ctx context.Context, s *domain.ProcessStep) error {
	query := `INSERT INTO process_steps (id, date, name, order_index) VALUES (?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, s.ID, string(s.Date), s.Name, s.Order); err != nil {
		return fmt.Errorf("inserting process step: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleRepo) CreateTask(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.StepID,
		t.Name,
		timeToString(t.Start),
		timeToString(t.End),
		t.Details,
		joinResources(t.Resources),
		orderIndexOfTask(t),
		timeToString(t.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

// orderIndexOfTask derives a stable ordering column from the task start so
// insertion order and temporal order agree for well-formed data.
func orderIndexOfTask(t *domain.Task) int {
	return t.Start.Hour()*60 + t.Start.Minute()
}

// StepsForDate returns the date's process steps in display order, each with
// its tasks in list order. An unknown date yields an empty result.
func (r *SQLiteScheduleRepo) StepsForDate(ctx context.Context, date domain.DateKey) ([]*domain.ProcessStep, error) {
	query := `SELECT id, date, name, order_index FROM process_steps
		WHERE date = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, string(date))
	if err != nil {
		return nil, fmt.Errorf("listing process steps: %w", err)
	}
	defer rows.Close()

	var steps []*domain.ProcessStep
	for rows.Next() {
		var s domain.ProcessStep
		var dateStr string
		if err := rows.Scan(&s.ID, &dateStr, &s.Name, &s.Order); err != nil {
			return nil, fmt.Errorf("scanning process step: %w", err)
		}
		s.Date = domain.DateKey(dateStr)
		steps = append(steps, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating process steps: %w", err)
	}

	for _, s := range steps {
		tasks, err := r.tasksForStep(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Tasks = tasks
	}
	return steps, nil
}

func (r *SQLiteScheduleRepo) tasksForStep(ctx context.Context, stepID string) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE step_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, stepID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks for step: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		var t domain.Task
		var startStr, endStr, resources, createdStr string
		var orderIndex int
		if err := rows.Scan(&t.ID, &t.StepID, &t.Name, &startStr, &endStr,
			&t.Details, &resources, &orderIndex, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.Start = parseTime(startStr)
		t.End = parseTime(endStr)
		t.Resources = splitResources(resources)
		t.CreatedAt = parseTime(createdStr)
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *SQLiteScheduleRepo) ListDates(ctx context.Context) ([]domain.DateKey, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT date FROM process_steps ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("listing schedule dates: %w", err)
	}
	defer rows.Close()

	var dates []domain.DateKey
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("scanning date: %w", err)
		}
		dates = append(dates, domain.DateKey(d))
	}
	return dates, rows.Err()
}

// ReplaceDate swaps out a date's entire step list in one transaction, so a
// concurrent read never observes a torn collection mid-update.
func (r *SQLiteScheduleRepo) ReplaceDate(ctx context.Context, date domain.DateKey, steps []*domain.ProcessStep) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting replace transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM process_steps WHERE date = ?`, string(date)); err != nil {
		return fmt.Errorf("clearing date %s: %w", date, err)
	}

	for _, s := range steps {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO process_steps (id, date, name, order_index) VALUES (?, ?, ?, ?)`,
			s.ID, string(date), s.Name, s.Order); err != nil {
			return fmt.Errorf("inserting replacement step: %w", err)
		}
		for _, t := range s.Tasks {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, s.ID, t.Name, timeToString(t.Start), timeToString(t.End),
				t.Details, joinResources(t.Resources), orderIndexOfTask(&t), timeToString(t.CreatedAt)); err != nil {
				return fmt.Errorf("inserting replacement task: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}
	committed = true
	return nil
}
