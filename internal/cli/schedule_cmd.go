package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
	"github.com/ovenware/bakeboard/internal/domain"
)

// resolveDate turns the --date flag into a DateKey: an explicit flag wins,
// otherwise the earliest scheduled date, otherwise today.
func resolveDate(ctx context.Context, app *App, flag string) (domain.DateKey, error) {
	if flag != "" {
		return domain.ParseDateKey(flag)
	}
	date, ok, err := app.Schedule.EarliestDate(ctx)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.Today(), nil
	}
	return date, nil
}

func newScheduleCmd(app *App) *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the production schedule for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			date, err := resolveDate(ctx, app, dateFlag)
			if err != nil {
				return err
			}

			steps, err := app.Schedule.StepsForDate(ctx, date)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(date, steps))
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Schedule date (YYYY-MM-DD)")

	return cmd
}
