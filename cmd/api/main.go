// Command api is the footscout HTTP API server. When SCHEDULER_ENABLED is
// true it also runs the cron-driven scrape scheduler in the same
// process; when false, the process serves only the read API.
//
// Usage:
//
//	footscout-api
//	API_PORT=8080 footscout-api

// @title footscout API
// @version 1.0.0
// @description Player stats, match logs, and comparison endpoints backed by a scraped-and-reconciled Postgres store.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/footscout/internal/api"
	"github.com/albapepper/footscout/internal/config"
	"github.com/albapepper/footscout/internal/notify"
	"github.com/albapepper/footscout/internal/scheduler"
	"github.com/albapepper/footscout/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	logger.Info("connecting to database")
	pool, err := store.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected", "min_conns", cfg.DBPoolMinConns, "max_conns", cfg.DBPoolMaxConns)

	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		notifier := notify.Multi{
			Senders: []notify.Sender{
				notify.NewSMTPSender(cfg.SMTPHost, fmt.Sprint(cfg.SMTPPort), cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, cfg.SMTPTo, logger),
				notify.NewWebhookSender(cfg.WebhookURL, logger),
			},
			Logger: logger,
		}

		sched, err = scheduler.New(cfg, pool, notifier, logger)
		if err != nil {
			logger.Error("failed to build scheduler", "error", err)
			os.Exit(1)
		}
		sched.Start(ctx)
		defer sched.Stop()
		logger.Info("scheduler started", "timezone", cfg.SchedulerTimezone)
	} else {
		logger.Info("scheduler disabled, serving API only")
	}

	router := api.NewRouter(pool, sched, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting footscout API", "addr", addr, "environment", cfg.Environment, "docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
