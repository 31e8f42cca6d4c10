package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/gmolchanov/quadrant/internal/cli"
	"github.com/gmolchanov/quadrant/internal/config"
	"github.com/gmolchanov/quadrant/internal/db"
	"github.com/gmolchanov/quadrant/internal/repository"
	"github.com/gmolchanov/quadrant/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := newLogger(cfg)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	taskRepo := repository.NewSQLiteTaskRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Tasks:  service.NewTaskService(taskRepo, uow, cfg.UrgentWindowDays),
		Stats:  service.NewStatsService(taskRepo),
		Config: cfg,
		Logger: logger,
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger picks the log format: JSON when configured, colored text on a
// terminal, logfmt otherwise.
func newLogger(cfg *config.Config) *log.Logger {
	formatter := log.LogfmtFormatter
	switch {
	case cfg.LogJSON:
		formatter = log.JSONFormatter
	case isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()):
		formatter = log.TextFormatter
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "quadrant",
	})
}
