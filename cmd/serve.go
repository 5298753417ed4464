package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/schedsync/sheetcal/internal/config"
	"github.com/schedsync/sheetcal/internal/logging"
	"github.com/schedsync/sheetcal/internal/server"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as a daemon, synchronizing on a schedule",
		Long: `Run sheetcal as a long-lived daemon. A pass runs immediately on startup and
then on the configured poll schedule. A poll tick that fires while a pass is
still running is skipped, not queued.

With metrics_listen set, Prometheus metrics and a health probe are served on
that address (/metrics, /healthz).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			logger := logging.New(cfg.LogLevel)
			return runServe(cmd.Context(), cfg, logger)
		},
	}
}

func runServe(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := buildApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	var metricsServer *server.MetricsServer
	if cfg.MetricsListen != "" {
		metricsServer = server.NewMetricsServer(cfg.MetricsListen, promhttp.Handler(), logger)
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Error("metrics server failed", logging.Err(err))
			}
		}()
	}

	// First pass right away, then on the poll schedule.
	if err := app.Syncer.TryRun(ctx); err != nil {
		logger.Error("sync pass failed", logging.Err(err))
	}

	c := cron.New()
	_, err = c.AddFunc(cfg.Poll, func() {
		if err := app.Syncer.TryRun(ctx); err != nil {
			logger.Error("sync pass failed", logging.Err(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid poll schedule %q: %w", cfg.Poll, err)
	}
	c.Start()

	logger.Info("daemon started",
		slog.String("poll", cfg.Poll),
		slog.String("metrics", cfg.MetricsListen),
	)

	<-ctx.Done()
	logger.Info("shutdown signal received")

	cronCtx := c.Stop()
	select {
	case <-cronCtx.Done():
	case <-time.After(server.DefaultShutdownTimeout):
		logger.Warn("timed out waiting for running pass to finish")
	}

	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("metrics server shutdown", logging.Err(err))
		}
	}

	return nil
}
