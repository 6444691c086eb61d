package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/bootstrap"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/config"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/dailypuzzle"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/database"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/server"
	"github.com/Newjack1108/robotrecruit-ai-sub001/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	slog.Info(bootstrap.LogMsgStarting, "port", cfg.Port, "environment", cfg.Environment)

	warnings, err := config.ValidateEnvWithWarnings()
	for _, w := range warnings {
		slog.Warn(bootstrap.LogMsgConfigWarning, "detail", w)
	}
	if err != nil {
		slog.Error("Invalid environment", "error", err)
		os.Exit(1)
	}
	slog.Info(bootstrap.LogMsgConfigurationLoaded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxIdle, cfg.DBMaxLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, dbPool); err != nil {
			slog.Error("Failed to apply migrations", "error", err)
			dbPool.Close()
			os.Exit(1)
		}
	} else {
		slog.Info(bootstrap.LogMsgMigrationsSkipped)
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	puzzleService := dailypuzzle.NewService(repos.Puzzle, cfg.PuzzleCacheSize, cfg.PuzzleCacheTTL)

	components := bootstrap.ShutdownComponents{DBPool: dbPool}

	if cfg.PuzzleWorkerEnabled {
		puzzleWorker := worker.NewDailyPuzzleWorker(puzzleService)
		puzzleWorker.Start()
		components.PuzzleWorker = puzzleWorker
	} else {
		slog.Info(bootstrap.LogMsgWorkerDisabled)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		ServiceName:    cfg.ServiceName,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimitRequests,
		RateWindow:     cfg.RateLimitWindow,
	}, dbPool, puzzleService)
	components.Server = srv

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, components)

	if exitCode != 0 {
		cancel()
		os.Exit(exitCode)
	}
}
