package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovenware/bakeboard/internal/domain"
	"github.com/ovenware/bakeboard/internal/seed"
)

func TestTUI_OpensOnManagerGantt(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, "Manager", d.RoleLabel())
	assert.Equal(t, seed.Date, d.State().SelectedDate)

	view := d.View()
	assert.Contains(t, view, "Mixing")
	assert.Contains(t, view, "Baking")
	assert.NotContains(t, view, "Loading")
}

func TestTUI_QuitWithQ(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QuitWithCtrlC(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
}

func TestTUI_RoleSwitching(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	assert.Equal(t, ViewBaker, d.ActiveViewID())
	assert.Equal(t, "Baker 1", d.RoleLabel())
	assert.Contains(t, d.View(), "Mix Sourdough")

	d.PressKey('2')
	assert.Equal(t, "Baker 2", d.RoleLabel())
	assert.Equal(t, "baker2", d.State().SelectedBaker)
	assert.Contains(t, d.View(), "Mix Cookie Dough")

	d.PressKey('m')
	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, "Manager", d.RoleLabel())

	// Exactly one view renders: the manager board, with no baker detail
	// left over from the previous screen.
	view := d.View()
	assert.Contains(t, view, "resources:")
	assert.NotContains(t, view, "equipment:")
}

func TestTUI_BakerNumberOutOfRangeIgnored(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('9')

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, "Manager", d.RoleLabel())
}

func TestTUI_ReselectActiveRoleIsNoop(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressDown()
	d.PressDown()
	d.PressUp()
	require.Equal(t, 1, d.appModel().active.(*ganttView).cursor)

	d.PressKey('m')

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, 1, d.appModel().active.(*ganttView).cursor)
}

func TestTUI_DateSurvivesRoleSwitches(t *testing.T) {
	d := NewTestDriver(t, emptyTestApp(t))

	start := d.State().SelectedDate
	d.PressKey(']')
	assert.Equal(t, start.AddDays(1), d.State().SelectedDate)

	d.PressKey('o')
	d.PressEsc()

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Equal(t, start.AddDays(1), d.State().SelectedDate)
}

func TestTUI_DatePagingClampsAtListEnds(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey(']')
	assert.Equal(t, seed.Date, d.State().SelectedDate)

	d.PressKey('[')
	assert.Equal(t, seed.Date, d.State().SelectedDate)
}

func TestTUI_ArrowKeysPageDates(t *testing.T) {
	d := NewTestDriver(t, emptyTestApp(t))

	start := d.State().SelectedDate
	d.PressRight()
	assert.Equal(t, start.AddDays(1), d.State().SelectedDate)

	d.PressLeft()
	assert.Equal(t, start, d.State().SelectedDate)
}

func TestTUI_EmptyDateShowsMessage(t *testing.T) {
	d := NewTestDriver(t, emptyTestApp(t))

	assert.Contains(t, d.View(), "No production scheduled")
}

func TestTUI_GanttSelectionShowsDetail(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	// First bar is the earliest mixing task.
	view := d.View()
	assert.Contains(t, view, "3 batches, 36 loaves")
	assert.Contains(t, view, "Mixer A")

	d.PressDown()
	assert.Contains(t, d.View(), "220 cookies")
}

func TestTUI_BakerAdvanceStatus(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('1')
	d.PressSpace()

	tasks, err := app.BakerTasks.TasksFor(context.Background(), "baker1", seed.Date)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, tasks[0].Status)

	d.PressSpace()
	tasks, err = app.BakerTasks.TasksFor(context.Background(), "baker1", seed.Date)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, tasks[0].Status)

	// A done task never regresses, no matter how often space is pressed.
	d.PressSpace()
	tasks, err = app.BakerTasks.TasksFor(context.Background(), "baker1", seed.Date)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskDone, tasks[0].Status)
}

func TestTUI_BakerCalloutsRenderInStoredOrder(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')

	// Every task's callouts are visible in the list without moving the
	// cursor off the first row.
	view := d.View()
	assert.Contains(t, view, "Mixer A must be cleared")
	assert.Contains(t, view, "URGENT")

	first := strings.Index(view, "Cookies must be cooled")
	second := strings.Index(view, "Brioche glazed")
	require.GreaterOrEqual(t, first, 0)
	require.GreaterOrEqual(t, second, 0)
	assert.Less(t, first, second)
}

func TestTUI_OrderFormCancel(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('o')
	assert.Equal(t, ViewOrderForm, d.ActiveViewID())
	assert.Equal(t, "New Order", d.RoleLabel())

	d.PressEsc()
	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Contains(t, d.Note(), "cancelled")

	orders, err := app.Orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestTUI_OrderFormCapturesRoleKeys(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('o')
	d.PressKey('m')
	d.PressKey('1')

	// The characters went into the customer field, not the role switcher.
	assert.Equal(t, ViewOrderForm, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewGantt, d.ActiveViewID())
}

func TestTUI_OrderFormSubmit(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('o')
	d.Type("Cafe Luna")
	d.PressEnter()
	d.Type("Sourdough loaf")
	d.PressEnter()
	d.Type("12")
	d.PressEnter()
	d.Type("2025-03-14")
	d.PressEnter()
	d.Type("deliver before 7am")
	d.PressEnter()

	assert.Equal(t, ViewGantt, d.ActiveViewID())
	assert.Contains(t, d.Note(), "Order recorded")

	orders, err := app.Orders.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, "Cafe Luna", o.Customer)
	assert.Equal(t, "Sourdough loaf", o.Product)
	assert.Equal(t, 12, o.Quantity)
	require.NotNil(t, o.DueDate)
	assert.Equal(t, "2025-03-14", o.DueDate.Format("2006-01-02"))
	assert.Equal(t, "deliver before 7am", o.Notes)
}

func TestTUI_ResizePropagates(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, 120, d.State().Width)
	assert.Equal(t, 40, d.State().Height)
}

func TestTUI_TallContentClampedToWindow(t *testing.T) {
	// The seeded board renders more body lines than a 10-row terminal can
	// hold; the shell truncates the body so header and status bar stay put.
	d := NewTestDriverSize(t, testApp(t), 80, 10)

	lines := strings.Count(d.View(), "\n") + 1
	assert.LessOrEqual(t, lines, 10)
}
