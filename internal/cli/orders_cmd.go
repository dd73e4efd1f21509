package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenware/bakeboard/internal/cli/formatter"
)

func newOrdersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "orders",
		Short: "Print recorded customer orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := app.Orders.List(context.Background())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatOrders(orders))
			return nil
		},
	}
}
