package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/seed"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestScheduleCmd_PrintsSeededDay(t *testing.T) {
	out := execute(t, testApp(t), "schedule", "--date", string(seed.Date))

	assert.Contains(t, out, "Mixing")
	assert.Contains(t, out, "Mix Sourdough (ORD001)")
	assert.Contains(t, out, "5:30 AM")
}

func TestScheduleCmd_DefaultsToEarliestDate(t *testing.T) {
	out := execute(t, testApp(t), "schedule")

	// Headers render uppercased.
	assert.Contains(t, out, "MAR 10 2025")
}

func TestScheduleCmd_AbsentDateIsEmptyNotError(t *testing.T) {
	out := execute(t, testApp(t), "schedule", "--date", "2030-01-01")

	assert.Contains(t, out, "No production scheduled")
}

func TestTasksCmd_PrintsBakerDay(t *testing.T) {
	out := execute(t, testApp(t), "tasks", "baker2", "--date", string(seed.Date))

	assert.Contains(t, out, "Mix Cookie Dough")
	assert.Contains(t, out, "waiting on baker1")
}

func TestTasksCmd_UnknownBakerIsEmpty(t *testing.T) {
	out := execute(t, testApp(t), "tasks", "nobody", "--date", string(seed.Date))

	assert.Contains(t, out, "No tasks")
}

func TestOrdersCmd_ListsRecordedOrders(t *testing.T) {
	app := testApp(t)

	due := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	require.NoError(t, app.Orders.Submit(context.Background(), &domain.Order{
		Customer: "Cafe Luna",
		Product:  "Sourdough loaf",
		Quantity: 12,
		DueDate:  &due,
	}))

	out := execute(t, app, "orders")

	assert.Contains(t, out, "Sourdough loaf")
	assert.Contains(t, out, "Cafe Luna")
	assert.Contains(t, out, "due 2025-03-14")
}

func TestOrdersCmd_EmptyStore(t *testing.T) {
	out := execute(t, emptyTestApp(t), "orders")

	assert.Contains(t, out, "No orders recorded")
}
