package bootstrap

import (
	"context"
	"fmt"

	"github.com/osse101/BankerBot_Go/internal/config"
	"github.com/osse101/BankerBot_Go/internal/database"
	"github.com/osse101/BankerBot_Go/internal/database/postgres"
	"github.com/osse101/BankerBot_Go/internal/eventlog"
	"github.com/osse101/BankerBot_Go/internal/handler"
	"github.com/osse101/BankerBot_Go/internal/logger"
	"github.com/osse101/BankerBot_Go/internal/stats"
)

// StatsBackend bundles the selected stats repository with its readiness
// probe and cleanup hook. EventLog is set only for the postgres backend;
// the in-memory and file backends keep no event trail.
type StatsBackend struct {
	Repository stats.Repository
	EventLog   eventlog.Repository
	ReadyCheck handler.ReadinessCheck
	Close      func()
}

// SetupStatsBackend selects and initializes the stats repository named by
// STATS_BACKEND. The memory and file backends have no external dependency,
// so their readiness check is nil.
func SetupStatsBackend(ctx context.Context, cfg *config.Config) (*StatsBackend, error) {
	switch cfg.StatsBackend {
	case config.StatsBackendMemory:
		logger.Info(LogMsgStatsBackendSelected, "backend", cfg.StatsBackend)
		return &StatsBackend{
			Repository: stats.NewMemoryRepository(),
			Close:      func() {},
		}, nil

	case config.StatsBackendFile:
		logger.Info(LogMsgStatsBackendSelected, "backend", cfg.StatsBackend, "path", cfg.StatsFile)
		return &StatsBackend{
			Repository: stats.NewFileRepository(cfg.StatsFile),
			Close:      func() {},
		}, nil

	case config.StatsBackendPostgres:
		connString := cfg.GetDBConnString()

		if err := database.RunMigrations(ctx, connString); err != nil {
			return nil, err
		}

		pool, err := database.NewPool(connString)
		if err != nil {
			return nil, err
		}

		logger.Info(LogMsgStatsBackendSelected, "backend", cfg.StatsBackend, "host", cfg.DBHost)
		return &StatsBackend{
			Repository: postgres.NewStatsRepository(pool),
			EventLog:   postgres.NewEventLogRepository(pool),
			ReadyCheck: pool.Ping,
			Close:      pool.Close,
		}, nil
	}

	return nil, fmt.Errorf("unknown stats backend %q", cfg.StatsBackend)
}
