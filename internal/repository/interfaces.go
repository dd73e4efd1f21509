package repository

import (
	"context"

	"github.com/ovenware/bakeboard/internal/domain"
)

// ScheduleRepo supplies the manager board's per-date process steps.
// Absence is empty: an unknown date yields a nil slice, never an error.
type ScheduleRepo interface {
	CreateStep(ctx context.Context, s *domain.ProcessStep) error
	CreateTask(ctx context.Context, t *domain.Task) error
	StepsForDate(ctx context.Context, date domain.DateKey) ([]*domain.ProcessStep, error)
	ListDates(ctx context.Context) ([]domain.DateKey, error)
	ReplaceDate(ctx context.Context, date domain.DateKey, steps []*domain.ProcessStep) error
}

// BakerTaskRepo supplies per-baker, per-date personal task lists.
type BakerTaskRepo interface {
	Create(ctx context.Context, t *domain.BakerTask) error
	GetByID(ctx context.Context, id string) (*domain.BakerTask, error)
	TasksFor(ctx context.Context, bakerID string, date domain.DateKey) ([]*domain.BakerTask, error)
	ListBakers(ctx context.Context) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) error
}

// OrderRepo stores submitted order records. Scheduling them is out of scope.
type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
}
