package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/database"
)

// Stopper is anything with a context-bounded graceful stop
type Stopper interface {
	Stop(ctx context.Context) error
}

// Shutdowner is a background component that drains on shutdown
type Shutdowner interface {
	Shutdown(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server       Stopper
	PuzzleWorker Shutdowner
	DBPool       database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Daily puzzle worker (cancel the rollover timer, finish an in-flight run)
// 3. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.PuzzleWorker != nil {
		if err := components.PuzzleWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgWorkerShutdownFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
