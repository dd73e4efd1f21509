package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/ovenware/bakeboard/internal/cli"
	"github.com/ovenware/bakeboard/internal/db"
	"github.com/ovenware/bakeboard/internal/repository"
	"github.com/ovenware/bakeboard/internal/seed"
	"github.com/ovenware/bakeboard/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.bakeboard/bakeboard.db
	dbPath := os.Getenv("BAKEBOARD_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".bakeboard", "bakeboard.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	bakerTaskRepo := repository.NewSQLiteBakerTaskRepo(database)
	orderRepo := repository.NewSQLiteOrderRepo(database)

	// Seed the demo production day so a fresh install shows a live board.
	if err := seed.EnsureDemoData(context.Background(), scheduleRepo, bakerTaskRepo); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	app := &cli.App{
		Schedule:   service.NewScheduleService(scheduleRepo),
		BakerTasks: service.NewBakerTaskService(bakerTaskRepo),
		Orders:     service.NewOrderService(orderRepo),
	}

	// Detect interactive terminal for the dashboard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
