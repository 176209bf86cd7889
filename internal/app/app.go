package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"

	"github.com/sustainage/materiality-survey/internal/adapter/postgres"
	"github.com/sustainage/materiality-survey/internal/config"
	"github.com/sustainage/materiality-survey/internal/transport/middleware"
	"github.com/sustainage/materiality-survey/migrations"
)

// Run loads configuration, prepares the database and serves HTTP until ctx
// is canceled, then drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("smtp_enabled", cfg.SMTP.Enabled()),
		slog.Bool("sessions_enabled", cfg.Auth.SessionsEnabled()),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	clock := clockwork.NewRealClock()
	limiter := middleware.NewRateLimiter(clock, cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler, err := NewHandler(cfg, Deps{
		Logger:  logger,
		Pool:    pool,
		Clock:   clock,
		Limiter: limiter,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	return serve(ctx, srv, cfg.Server, logger)
}

func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
