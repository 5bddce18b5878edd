package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courtsight/nba-analytics/internal/app"
	"github.com/courtsight/nba-analytics/internal/config"
	"github.com/courtsight/nba-analytics/internal/domain/pipeline"
	"github.com/courtsight/nba-analytics/internal/observability"
	"github.com/courtsight/nba-analytics/internal/platform/logging"
)

// Runs the full ETL once and exits non-zero when the run fails.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	services, err := app.BuildServices(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, runErr := services.Pipeline.Run(ctx)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := services.Close(closeCtx); err != nil {
		logger.Error("close services failed", "error", err)
	}
	if err := shutdownUptrace(closeCtx); err != nil {
		logger.Error("shutdown uptrace failed", "error", err)
	}

	if runErr != nil {
		logger.Error("etl run failed", "season", cfg.Season, "error", runErr)
		_ = logger.Sync()
		os.Exit(1)
	}

	logger.Info("etl run finished",
		"season", report.Season,
		"status", report.Status,
		"tables", len(report.TablesWritten),
		"warnings", len(report.Warnings),
	)
	if report.Status == pipeline.StatusDegraded {
		logger.Warn("etl run completed with warnings", "warnings", report.Warnings)
	}
}
