package seed

import (
	"context"
	"testing"

	"github.com/ovenware/bakeboard/internal/repository"
	"github.com/ovenware/bakeboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDemoData_PopulatesEmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	schedule := repository.NewSQLiteScheduleRepo(database)
	tasks := repository.NewSQLiteBakerTaskRepo(database)
	ctx := context.Background()

	require.NoError(t, EnsureDemoData(ctx, schedule, tasks))

	steps, err := schedule.StepsForDate(ctx, Date)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.Equal(t, "Mixing", steps[0].Name)
	assert.Equal(t, "Finishing", steps[3].Name)

	bakers, err := tasks.ListBakers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"baker1", "baker2"}, bakers)
}

func TestEnsureDemoData_Idempotent(t *testing.T) {
	database := testutil.NewTestDB(t)
	schedule := repository.NewSQLiteScheduleRepo(database)
	tasks := repository.NewSQLiteBakerTaskRepo(database)
	ctx := context.Background()

	require.NoError(t, EnsureDemoData(ctx, schedule, tasks))
	require.NoError(t, EnsureDemoData(ctx, schedule, tasks))

	steps, err := schedule.StepsForDate(ctx, Date)
	require.NoError(t, err)
	assert.Len(t, steps, 4)
}

func TestDemoData_AllTasksWithinTheirDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	schedule := repository.NewSQLiteScheduleRepo(database)
	tasks := repository.NewSQLiteBakerTaskRepo(database)
	ctx := context.Background()

	require.NoError(t, EnsureDemoData(ctx, schedule, tasks))

	steps, err := schedule.StepsForDate(ctx, Date)
	require.NoError(t, err)
	for _, step := range steps {
		for _, task := range step.Tasks {
			assert.True(t, task.Start.Before(task.End), "%s: start must precede end", task.Name)
			assert.Equal(t, task.Start.Day(), task.End.Day(), "%s: no midnight-spanning tasks", task.Name)
		}
	}
}
