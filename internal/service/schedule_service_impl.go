package service

import (
	"context"

	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/repository"
)

type scheduleService struct {
	schedule repository.ScheduleRepo
}

func NewScheduleService(schedule repository.ScheduleRepo) ScheduleService {
	return &scheduleService{schedule: schedule}
}

func (s *scheduleService) StepsForDate(ctx context.Context, date domain.DateKey) ([]*domain.ProcessStep, error) {
	return s.schedule.StepsForDate(ctx, date)
}

func (s *scheduleService) ListDates(ctx context.Context) ([]domain.DateKey, error) {
	return s.schedule.ListDates(ctx)
}

// EarliestDate returns the dataset's first date, used as the board's initial
// selection. The bool is false when the store holds no dates at all.
func (s *scheduleService) EarliestDate(ctx context.Context) (domain.DateKey, bool, error) {
	dates, err := s.schedule.ListDates(ctx)
	if err != nil {
		return "", false, err
	}
	if len(dates) == 0 {
		return "", false, nil
	}
	return dates[0], true, nil
}
