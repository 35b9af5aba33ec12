package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/BankerBot_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server       *server.Server
	StatsBackend *StatsBackend
	LogFileClose func() error
}

// GracefulShutdown stops the HTTP server first so no new requests arrive,
// then releases the stats backend and log file.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.StatsBackend != nil && components.StatsBackend.Close != nil {
		components.StatsBackend.Close()
	}

	slog.Info(LogMsgServerStopped)

	if components.LogFileClose != nil {
		if err := components.LogFileClose(); err != nil {
			slog.Error("Failed to close log file", "error", err)
		}
	}
}
