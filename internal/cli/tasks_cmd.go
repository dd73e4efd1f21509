package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
)

func newTasksCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "tasks <baker>",
		Short: "Print one baker's task list for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			bakerID := args[0]

			date, err := resolveDate(ctx, app, dateFlag)
			if err != nil {
				return err
			}

			tasks, err := app.BakerTasks.TasksFor(ctx, bakerID, date)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBakerTasks(bakerID, date, tasks))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Schedule date (YYYY-MM-DD)")

	return cmd
}
