package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"storage/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	configs := getConfigs()

	level, err := configs.ParseLogLevel()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	app, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = runDemo(ctx, &app, os.Stdout); err != nil {
		log.Fatalf("Demo failed: %v", err)
	}

	runJobs(ctx, &app, logger)
}

func getConfigs() cmd.Config {
	loadDotEnv(".env")

	return cmd.Config{
		LocationDesignation: os.Getenv("LOCATION_DESIGNATION"),
		BasePrice:           os.Getenv("BASE_PRICE"),
		BillingSchedule:     os.Getenv("BILLING_SCHEDULE"),
		OccupancySchedule:   os.Getenv("OCCUPANCY_SCHEDULE"),
		LogLevel:            os.Getenv("LOG_LEVEL"),
	}
}

// loadDotEnv reads path into the environment. A missing file is fine, the
// process environment is used as is.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading %s file: %v", path, err)
	}
}

// runJobs starts the scheduled jobs and blocks until ctx ends. It returns at
// once when no job is scheduled.
func runJobs(ctx context.Context, app *cmd.CompositionRoot, logger *slog.Logger) {
	jobManager := app.CreateJobManager()
	if jobManager.Len() == 0 {
		return
	}

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	logger.InfoContext(ctx, "Jobs running, press Ctrl+C to stop", "jobs", jobManager.Len())
	<-ctx.Done()
}
