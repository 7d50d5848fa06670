package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"presence-lab/cache"
	"presence-lab/domain"
	"presence-lab/infrastructure/session"
	"presence-lab/infrastructure/source"
	"presence-lab/internal"
	"presence-lab/observability"
	"presence-lab/repositories"
	"presence-lab/runtime"
	"presence-lab/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	// The main function acts as a thin wrapper.
	// Its only responsibility is to call run() and handle the OS exit code.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sessiond terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run initializes all components, manages the daemon lifecycle, and
// centralizes error reporting so deferred cleanup (database close, drain)
// always executes before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config validation: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Metadata store (BadgerDB, in-memory: presence data does not
	// survive a restart and must not pretend to)
	db, err := badger.Open(buildBadgerOpts(logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("metadata store opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing metadata store...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) && config.DebugPort != 0 {
		endpoint := "/inspect"
		logger.Info("Debug store inspector available",
			"url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, endpoint))
		database.StartDebugServer(db, config.DebugPort, endpoint, MetadataMapper)
	}

	// 3. Core wiring: provider -> registry -> cache
	provider := session.NewLocalProvider(logger)
	registry := runtime.NewRegistry(logger)
	unbind := runtime.Bind(provider, registry)
	defer unbind()

	monitor := observability.NewMonitor(logger)
	offJoinCount := registry.OnJoin(func(*domain.Player) { monitor.IncrJoin() })
	defer offJoinCount()
	offLeaveCount := registry.OnLeave(func(*domain.Player, domain.LeaveReason) { monitor.IncrLeave() })
	defer offLeaveCount()

	metadataSource := source.NewHTTPSource(logger, config.MetadataBaseURL, config.HTTPTimeout)
	store := repositories.NewMetadata(db, logger)
	metadataCache := cache.New(logger, metadataSource, store, monitor, config.FetchTimeout)
	offInvalidate := metadataCache.BindTo(registry)
	defer offInvalidate()

	// 4. Supervised workers
	supervisor := workers.NewSupervisor(logger)
	supervisor.Add(workers.NewMonitorWorker(logger, monitor, registry.Count, config.MonitorInterval))
	if config.RosterInterval > 0 {
		supervisor.Add(workers.NewRosterWorker(logger, registry, os.Stdout, config.RosterInterval))
	}
	if config.DemoFeed {
		supervisor.Add(NewFeedWorker(logger, provider, metadataCache))
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		supervisor.Run(ctx)
	}()

	<-ctx.Done()
	logger.Info("Shutdown requested, draining leave subscribers...")

	drainCtx, cancel := context.WithTimeout(context.Background(), config.DrainTimeout)
	defer cancel()
	provider.Shutdown(drainCtx)

	supervisor.Stop()
	<-done

	return exitOK, nil
}

func buildBadgerOpts(logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions("").WithInMemory(true)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

// MetadataMapper renders cached metadata rows for the store inspector.
func MetadataMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	switch {
	case strings.HasPrefix(key, "profile:"):
		row.Type = "PROFILE"
	case strings.HasPrefix(key, "avatar:"):
		row.Type = "AVATAR"
	}
	row.Detail = string(val)
	return row
}
