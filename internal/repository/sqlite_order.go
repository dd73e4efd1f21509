package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ovenware/bakeboard/internal/domain"
)

// SQLiteOrderRepo implements OrderRepo using a SQLite database.
type SQLiteOrderRepo struct {
	db *sql.DB
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(db *sql.DB) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: db}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	query := `INSERT INTO orders (id, customer, product, quantity, due_date, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		o.ID,
		o.Customer,
		o.Product,
		o.Quantity,
		nullableTimeToString(o.DueDate, dateLayout),
		o.Notes,
		o.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	return nil
}

func (r *SQLiteOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	query := `SELECT id, customer, product, quantity, due_date, notes, created_at
		FROM orders ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var o domain.Order
		var due sql.NullString
		var createdStr string
		if err := rows.Scan(&o.ID, &o.Customer, &o.Product, &o.Quantity, &due, &o.Notes, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		if due.Valid {
			o.DueDate = parseNullableTime(&due.String, dateLayout)
		}
		o.CreatedAt = parseTime(createdStr)
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}
