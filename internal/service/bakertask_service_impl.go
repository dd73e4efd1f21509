package service

import (
	"context"
	"fmt"

	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/repository"
)

type bakerTaskService struct {
	tasks repository.BakerTaskRepo
}

func NewBakerTaskService(tasks repository.BakerTaskRepo) BakerTaskService {
	return &bakerTaskService{tasks: tasks}
}

func (s *bakerTaskService) TasksFor(ctx context.Context, bakerID string, date domain.DateKey) ([]*domain.BakerTask, error) {
	return s.tasks.TasksFor(ctx, bakerID, date)
}

func (s *bakerTaskService) ListBakers(ctx context.Context) ([]string, error) {
	return s.tasks.ListBakers(ctx)
}

// Advance moves a task one lifecycle step forward
// (pending → in_progress → done). The lifecycle never regresses; a task
// already done stays done and the call reports an error.
func (s *bakerTaskService) Advance(ctx context.Context, id string) (*domain.BakerTask, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading baker task: %w", err)
	}

	next := task.Status.Next()
	if !task.Status.CanAdvanceTo(next) {
		return nil, fmt.Errorf("task %q is already %s", task.Name, task.Status)
	}

	if err := s.tasks.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}
	task.Status = next
	return task, nil
}
