package service

import (
	"context"

	"github.com/ovenware/bakeboard/internal/domain"
)

// ScheduleService is the manager board's read-only projection over the
// schedule store.
type ScheduleService interface {
	StepsForDate(ctx context.Context, date domain.DateKey) ([]*domain.ProcessStep, error)
	ListDates(ctx context.Context) ([]domain.DateKey, error)
	EarliestDate(ctx context.Context) (domain.DateKey, bool, error)
}

// BakerTaskService serves per-baker task lists and drives the one mutation
// this core exposes: advancing a task's status one lifecycle step forward.
type BakerTaskService interface {
	TasksFor(ctx context.Context, bakerID string, date domain.DateKey) ([]*domain.BakerTask, error)
	ListBakers(ctx context.Context) ([]string, error)
	Advance(ctx context.Context, id string) (*domain.BakerTask, error)
}

// OrderService accepts submitted order records. It produces order rows only;
// turning them into scheduled tasks is another system's job.
type OrderService interface {
	Submit(ctx context.Context, o *domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
}
