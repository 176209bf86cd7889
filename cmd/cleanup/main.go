// Command cleanup deletes audit records older than audit.retention_days.
// Run it from an external scheduler; the server does not prune the log itself.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/adapter/postgres/audit"
	"github.com/sustainage/materiality-survey/internal/app"
	"github.com/sustainage/materiality-survey/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	threshold := time.Now().UTC().AddDate(0, 0, -cfg.Audit.RetentionDays)

	deleted, err := audit.New(pool).DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("audit prune failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("audit prune completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
		slog.Int("retention_days", cfg.Audit.RetentionDays),
	)
}
