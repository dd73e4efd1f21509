package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/ovenware/bakeboard/internal/domain"
)

// FixtureDate is the reference production day used across tests.
var FixtureDate = domain.DateKey("2025-03-10")

// At builds a timestamp on FixtureDate at the given clock time.
func At(hour, minute int) time.Time {
	d := FixtureDate.Time()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.Local)
}

// ProcessStep options
type StepOption func(*domain.ProcessStep)

func WithStepOrder(n int) StepOption {
	return func(s *domain.ProcessStep) {
		s.Order = n
	}
}

func WithStepDate(d domain.DateKey) StepOption {
	return func(s *domain.ProcessStep) {
		s.Date = d
	}
}

func NewTestStep(name string, opts ...StepOption) *domain.ProcessStep {
	s := &domain.ProcessStep{
		ID:   uuid.New().String(),
		Date: FixtureDate,
		Name: name,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Task options
type TaskOption func(*domain.Task)

func WithTaskDetails(d string) TaskOption {
	return func(t *domain.Task) {
		t.Details = d
	}
}

func WithResources(rs ...string) TaskOption {
	return func(t *domain.Task) {
		t.Resources = rs
	}
}

func NewTestTask(stepID, name string, start, end time.Time, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        uuid.New().String(),
		StepID:    stepID,
		Name:      name,
		Start:     start,
		End:       end,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// BakerTask options
type BakerTaskOption func(*domain.BakerTask)

func WithStatus(s domain.TaskStatus) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Status = s
	}
}

func WithEquipment(e string) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Equipment = e
	}
}

func WithBakerTaskDetails(d string) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Details = d
	}
}

func WithDependencies(deps ...domain.Dependency) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Dependencies = deps
	}
}

func WithListOrder(n int) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Order = n
	}
}

func WithBakerTaskDate(d domain.DateKey) BakerTaskOption {
	return func(t *domain.BakerTask) {
		t.Date = d
	}
}

func NewTestBakerTask(bakerID, name string, start, end time.Time, opts ...BakerTaskOption) *domain.BakerTask {
	now := time.Now().UTC()
	t := &domain.BakerTask{
		ID:        uuid.New().String(),
		BakerID:   bakerID,
		Date:      FixtureDate,
		Name:      name,
		Start:     start,
		End:       end,
		Status:    domain.TaskPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}
