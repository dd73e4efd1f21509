package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ovenware/bakeboard/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Schedule   service.ScheduleService
	BakerTasks service.BakerTaskService
	Orders     service.OrderService

	// IsInteractive reports whether stdin is a terminal. The dashboard
	// refuses to start on a pipe.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "bakeboard" command. Running it with no
// subcommand starts the interactive dashboard; the subcommands print the
// same data as plain text for scripting.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "bakeboard",
		Short: "Bakery production dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return cmd.Help()
			}
			return runBoard(app)
		},
	}

	root.AddCommand(
		newScheduleCmd(app),
		newTasksCmd(app),
		newOrdersCmd(app),
	)

	return root
}

// runBoard starts the full-screen dashboard.
func runBoard(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
