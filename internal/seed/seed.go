// Package seed loads the demo production day into an empty store.
//
// The dataset mirrors a typical small-bakery morning: shared mixers and
// ovens across process steps, two bakers with personal task lists, and a
// handful of cross-baker coordination notes. A real deployment would feed
// the repositories from its own planning system instead.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/repository"
)

// Date is the demo dataset's single production day.
var Date = domain.DateKey("2025-03-10")

// EnsureDemoData populates the schedule and baker task stores with the demo
// day if the schedule store is empty. Re-running against a populated store
// is a no-op.
func EnsureDemoData(ctx context.Context, schedule repository.ScheduleRepo, tasks repository.BakerTaskRepo) error {
	dates, err := schedule.ListDates(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing schedule: %w", err)
	}
	if len(dates) > 0 {
		return nil
	}

	if err := seedSchedule(ctx, schedule); err != nil {
		return err
	}
	if err := seedBakerTasks(ctx, tasks); err != nil {
		return err
	}
	return nil
}

func at(hour, minute int) time.Time {
	d := Date.Time()
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.Local)
}

type seedTask struct {
	name      string
	start     time.Time
	end       time.Time
	details   string
	resources []string
}

func seedSchedule(ctx context.Context, schedule repository.ScheduleRepo) error {
	steps := []struct {
		name  string
		tasks []seedTask
	}{
		{
			name: "Mixing",
			tasks: []seedTask{
				{"Mix Sourdough (ORD001)", at(5, 30), at(6, 15), "3 batches, 36 loaves", []string{"Mixer A", "Maria"}},
				{"Mix Cookie Dough (ORD001+002)", at(6, 30), at(7, 0), "220 cookies", []string{"Mixer A", "Jonas"}},
				{"Mix Brioche (ORD003)", at(7, 15), at(8, 0), "60 buns", []string{"Mixer B", "Maria"}},
			},
		},
		{
			name: "Proofing",
			tasks: []seedTask{
				{"Proof Sourdough", at(6, 15), at(9, 15), "retarder shelf 2", []string{"Proofer 1"}},
				{"Proof Brioche", at(8, 0), at(9, 30), "warm cabinet", []string{"Proofer 2"}},
			},
		},
		{
			name: "Baking",
			tasks: []seedTask{
				{"Bake Sourdough", at(9, 30), at(10, 30), "36 loaves, deck oven", []string{"Oven 1", "Maria"}},
				{"Bake Cookies (ORD001+002)", at(8, 0), at(8, 45), "220 cookies, two trays", []string{"Oven 2", "Jonas"}},
				{"Bake Brioche", at(9, 45), at(10, 15), "60 buns", []string{"Oven 2", "Jonas"}},
			},
		},
		{
			name: "Finishing",
			tasks: []seedTask{
				{"Glaze Brioche", at(10, 30), at(11, 0), "apricot glaze", []string{"Bench 1", "Jonas"}},
				{"Pack Wholesale (ORD001)", at(11, 0), at(12, 0), "Cafe Lindgren pickup 12:30", []string{"Bench 2", "Maria"}},
			},
		},
	}

	for i, def := range steps {
		step := &domain.ProcessStep{
			ID:    uuid.New().String(),
			Date:  Date,
			Name:  def.name,
			Order: i,
		}
		if err := schedule.CreateStep(ctx, step); err != nil {
			return fmt.Errorf("seeding step %s: %w", def.name, err)
		}
		for _, st := range def.tasks {
			task := &domain.Task{
				ID:        uuid.New().String(),
				StepID:    step.ID,
				Name:      st.name,
				Start:     st.start,
				End:       st.end,
				Details:   st.details,
				Resources: st.resources,
				CreatedAt: time.Now().UTC(),
			}
			if err := schedule.CreateTask(ctx, task); err != nil {
				return fmt.Errorf("seeding task %s: %w", st.name, err)
			}
		}
	}
	return nil
}

func seedBakerTasks(ctx context.Context, tasks repository.BakerTaskRepo) error {
	now := time.Now().UTC()
	list := []*domain.BakerTask{
		{
			BakerID: "baker1", Name: "Mix Sourdough", Start: at(5, 30), End: at(6, 15),
			Details: "3 batches, 36 loaves", Equipment: "Mixer A", Status: domain.TaskPending, Order: 0,
		},
		{
			BakerID: "baker1", Name: "Mix Brioche", Start: at(7, 15), End: at(8, 0),
			Details: "60 buns", Equipment: "Mixer B", Status: domain.TaskPending, Order: 1,
			Dependencies: []domain.Dependency{
				{FromBaker: "baker2", Message: "Mixer A must be cleared after cookie dough", Urgent: false},
			},
		},
		{
			BakerID: "baker1", Name: "Bake Sourdough", Start: at(9, 30), End: at(10, 30),
			Details: "36 loaves", Equipment: "Oven 1", Status: domain.TaskPending, Order: 2,
		},
		{
			BakerID: "baker1", Name: "Pack Wholesale Order", Start: at(11, 0), End: at(12, 0),
			Details: "Cafe Lindgren, pickup 12:30", Equipment: "Bench 2", Status: domain.TaskPending, Order: 3,
			Dependencies: []domain.Dependency{
				{FromBaker: "baker2", Message: "Cookies must be cooled and counted", Urgent: true},
				{FromBaker: "baker2", Message: "Brioche glazed before boxing", Urgent: false},
			},
		},
		{
			BakerID: "baker2", Name: "Mix Cookie Dough", Start: at(6, 30), End: at(7, 0),
			Details: "220 cookies for ORD001+002", Equipment: "Mixer A", Status: domain.TaskPending, Order: 0,
			Dependencies: []domain.Dependency{
				{FromBaker: "baker1", Message: "Mixer A free after sourdough at 6:15", Urgent: false},
			},
		},
		{
			BakerID: "baker2", Name: "Bake Cookies", Start: at(8, 0), End: at(8, 45),
			Details: "two trays, rotate at 8:20", Equipment: "Oven 2", Status: domain.TaskPending, Order: 1,
		},
		{
			BakerID: "baker2", Name: "Bake Brioche", Start: at(9, 45), End: at(10, 15),
			Details: "60 buns", Equipment: "Oven 2", Status: domain.TaskPending, Order: 2,
			Dependencies: []domain.Dependency{
				{FromBaker: "baker1", Message: "Brioche proof check at 9:30", Urgent: true},
			},
		},
		{
			BakerID: "baker2", Name: "Glaze Brioche", Start: at(10, 30), End: at(11, 0),
			Details: "apricot glaze", Equipment: "Bench 1", Status: domain.TaskPending, Order: 3,
		},
	}

	for _, bt := range list {
		bt.ID = uuid.New().String()
		bt.Date = Date
		bt.CreatedAt = now
		bt.UpdatedAt = now
		if err := tasks.Create(ctx, bt); err != nil {
			return fmt.Errorf("seeding baker task %s: %w", bt.Name, err)
		}
	}
	return nil
}
