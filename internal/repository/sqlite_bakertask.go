package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ovenware/bakeboard/internal/domain"
)

const bakerTaskColumns = `id, baker_id, date, name, start_at, end_at,
		details, equipment, status, order_index, created_at, updated_at`

// SQLiteBakerTaskRepo implements BakerTaskRepo using a SQLite database.
type SQLiteBakerTaskRepo struct {
	db *sql.DB
}

// NewSQLiteBakerTaskRepo creates a new SQLiteBakerTaskRepo.
func NewSQLiteBakerTaskRepo(db *sql.DB) *SQLiteBakerTaskRepo {
	return &SQLiteBakerTaskRepo{db: db}
}

func (r *SQLiteBakerTaskRepo) Create(ctx context.Context, t *domain.BakerTask) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting create transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	query := `INSERT INTO baker_tasks (` + bakerTaskColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = tx.ExecContext(ctx, query,
		t.ID,
		t.BakerID,
		string(t.Date),
		t.Name,
		timeToString(t.Start),
		timeToString(t.End),
		t.Details,
		t.Equipment,
		string(t.Status),
		t.Order,
		timeToString(t.CreatedAt),
		timeToString(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting baker task: %w", err)
	}

	// The position column preserves dependency input order; it is the
	// only ordering the coordination callouts have.
	for i, d := range t.Dependencies {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_dependencies (baker_task_id, position, from_baker, message, urgent)
			VALUES (?, ?, ?, ?, ?)`,
			t.ID, i, d.FromBaker, d.Message, boolToInt(d.Urgent)); err != nil {
			return fmt.Errorf("inserting dependency %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing baker task: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteBakerTaskRepo) GetByID(ctx context.Context, id string) (*domain.BakerTask, error) {
	query := `SELECT ` + bakerTaskColumns + ` FROM baker_tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanBakerTask(row)
	if err != nil {
		return nil, err
	}
	deps, err := r.dependenciesFor(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Dependencies = deps
	return t, nil
}

// TasksFor returns one baker's tasks for a date in list order. Unknown
// baker or date yields an empty result, never an error.
func (r *SQLiteBakerTaskRepo) TasksFor(ctx context.Context, bakerID string, date domain.DateKey) ([]*domain.BakerTask, error) {
	query := `SELECT ` + bakerTaskColumns + ` FROM baker_tasks
		WHERE baker_id = ? AND date = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, bakerID, string(date))
	if err != nil {
		return nil, fmt.Errorf("listing baker tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*domain.BakerTask
	for rows.Next() {
		t, err := scanBakerTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating baker tasks: %w", err)
	}

	for _, t := range tasks {
		deps, err := r.dependenciesFor(ctx, t.ID)
		if err != nil {
			return nil, err
		}
		t.Dependencies = deps
	}
	return tasks, nil
}

func (r *SQLiteBakerTaskRepo) dependenciesFor(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT from_baker, message, urgent FROM task_dependencies
		WHERE baker_task_id = ? ORDER BY position`, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()

	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		var urgent int
		if err := rows.Scan(&d.FromBaker, &d.Message, &urgent); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		d.Urgent = urgent != 0
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

func (r *SQLiteBakerTaskRepo) ListBakers(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT baker_id FROM baker_tasks ORDER BY baker_id`)
	if err != nil {
		return nil, fmt.Errorf("listing bakers: %w", err)
	}
	defer rows.Close()

	var bakers []string
	for rows.Next() {
		var b string
		if err := rows.Scan(&b); err != nil {
			return nil, fmt.Errorf("scanning baker id: %w", err)
		}
		bakers = append(bakers, b)
	}
	return bakers, rows.Err()
}

func (r *SQLiteBakerTaskRepo) UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if !domain.ValidTaskStatuses[string(status)] {
		return fmt.Errorf("unknown task status %q", status)
	}
	res, err := r.db.ExecContext(ctx,
		`UPDATE baker_tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), timeToString(time.Now().UTC()), id)
	if err != nil {
		return fmt.Errorf("updating baker task status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking status update: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("baker task %s not found", id)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanBakerTask(row scanner) (*domain.BakerTask, error) {
	var t domain.BakerTask
	var dateStr, startStr, endStr, statusStr, createdStr, updatedStr string
	err := row.Scan(&t.ID, &t.BakerID, &dateStr, &t.Name, &startStr, &endStr,
		&t.Details, &t.Equipment, &statusStr, &t.Order, &createdStr, &updatedStr)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("baker task not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning baker task: %w", err)
	}
	t.Date = domain.DateKey(dateStr)
	t.Start = parseTime(startStr)
	t.End = parseTime(endStr)
	t.Status = domain.TaskStatus(statusStr)
	t.CreatedAt = parseTime(createdStr)
	t.UpdatedAt = parseTime(updatedStr)
	return &t, nil
}
