package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BankerBot_Go/internal/bootstrap"
	"github.com/osse101/BankerBot_Go/internal/config"
	"github.com/osse101/BankerBot_Go/internal/event"
	"github.com/osse101/BankerBot_Go/internal/eventlog"
	"github.com/osse101/BankerBot_Go/internal/game"
	"github.com/osse101/BankerBot_Go/internal/handler"
	"github.com/osse101/BankerBot_Go/internal/scheduler"
	"github.com/osse101/BankerBot_Go/internal/server"
	"github.com/osse101/BankerBot_Go/internal/stats"
	"github.com/osse101/BankerBot_Go/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second

	cleanupWorkers   = 1
	cleanupQueueSize = 4
	cleanupInterval  = 24 * time.Hour
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	backend, err := bootstrap.SetupStatsBackend(ctx, cfg)
	if err != nil {
		slog.Error("Stats backend setup failed", "error", err)
		os.Exit(1)
	}

	// Wire services: game sessions publish lifecycle events, the stats
	// handler folds concluded games into the aggregates.
	eventBus := event.NewMemoryBus()
	statsService := stats.NewService(backend.Repository)
	stats.NewEventHandler(statsService).Register(eventBus)

	// The postgres backend also keeps an audited event trail, trimmed to the
	// retention window by a scheduled job.
	var sched *scheduler.Scheduler
	var pool *worker.Pool
	if backend.EventLog != nil {
		eventLogService := eventlog.NewService(backend.EventLog)
		eventLogService.Subscribe(eventBus)

		pool = worker.NewPool(cleanupWorkers, cleanupQueueSize)
		pool.Start()
		sched = scheduler.New(pool)
		sched.Schedule(cleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))
	}

	registry := game.NewRegistry(cfg.SessionCap, cfg.SessionTTL)
	gameService := game.NewService(registry, eventBus)

	handler.InitValidator()
	srv := server.NewServer(cfg.Port, cfg.APIKey, gameService, statsService, backend.ReadyCheck)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if sched != nil {
		sched.Stop()
		pool.Stop()
	}

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:       srv,
		StatsBackend: backend,
		LogFileClose: logFile.Close,
	})
}
