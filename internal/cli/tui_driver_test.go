package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ovenware/bakeboard/internal/repository"
	"github.com/ovenware/bakeboard/internal/seed"
	"github.com/ovenware/bakeboard/internal/service"
	"github.com/ovenware/bakeboard/internal/teatest"
	"github.com/ovenware/bakeboard/internal/testutil"
)

// testApp wires an App against fresh in-memory SQLite, populated with the
// demo production day.
func testApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	scheduleRepo := repository.NewSQLiteScheduleRepo(db)
	bakerTaskRepo := repository.NewSQLiteBakerTaskRepo(db)
	orderRepo := repository.NewSQLiteOrderRepo(db)

	require.NoError(t, seed.EnsureDemoData(context.Background(), scheduleRepo, bakerTaskRepo))

	return &App{
		Schedule:   service.NewScheduleService(scheduleRepo),
		BakerTasks: service.NewBakerTaskService(bakerTaskRepo),
		Orders:     service.NewOrderService(orderRepo),
	}
}

// emptyTestApp wires an App against fresh in-memory SQLite with no data.
func emptyTestApp(t *testing.T) *App {
	t.Helper()
	db := testutil.NewTestDB(t)

	return &App{
		Schedule:   service.NewScheduleService(repository.NewSQLiteScheduleRepo(db)),
		BakerTasks: service.NewBakerTaskService(repository.NewSQLiteBakerTaskRepo(db)),
		Orders:     service.NewOrderService(repository.NewSQLiteOrderRepo(db)),
	}
}

// TestDriver wraps teatest.Driver with board-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel, sets terminal size, and drains
// Init() (which loads the board context synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	return NewTestDriverSize(t, app, 120, 40)
}

// NewTestDriverSize is NewTestDriver with an explicit terminal size.
func NewTestDriverSize(t *testing.T, app *App, width, height int) *TestDriver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), width, height)
	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the active view.
func (d *TestDriver) ActiveViewID() ViewID {
	return d.appModel().active.ID()
}

// RoleLabel returns the status-bar label for the active role.
func (d *TestDriver) RoleLabel() string {
	return d.appModel().roleLabel()
}

// Note returns the transient status-bar note.
func (d *TestDriver) Note() string {
	return d.appModel().note
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
