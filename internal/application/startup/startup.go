// Package startup runs the boot sequence of both services: configuration,
// logging, dependency wiring, background workers and graceful shutdown.
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ModelHouseContracting/modelhouse-go/internal/application/container"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/caching/cleanup"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/logging"
	"github.com/ModelHouseContracting/modelhouse-go/internal/infrastructure/observability/performance"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/routes"
	"github.com/ModelHouseContracting/modelhouse-go/internal/presentation/http/server"
	"github.com/ModelHouseContracting/modelhouse-go/pkg/config"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

const banner = "\033[33m" + `
  ╔╦╗╔═╗╔╦╗╔═╗╦    ╦ ╦╔═╗╦ ╦╔═╗╔═╗
  ║║║║ ║ ║║║╣ ║    ╠═╣║ ║║ ║╚═╗║╣
  ╩ ╩╚═╝═╩╝╚═╝╩═╝  ╩ ╩╚═╝╚═╝╚═╝╚═╝
` + "\033[97m" + `  Building Contracting LLC
` + "\033[0m"

// Initialize starts the site API and blocks until SIGINT or SIGTERM.
func Initialize() error {
	start := time.Now().UTC()
	log.Println(banner)

	log.Println("Loading configuration...")
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupGin(cfg.GinMode)

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()
	logger.Startup().Info("Channeled logging initialized", "levels", logger.GetChannelLevels())

	perfTracker := performance.NewTracker(nil)

	phaseStart := time.Now()
	appContainer, err := container.NewContainer(cfg, logger, perfTracker)
	if err != nil {
		logger.LogStartupPhase("container", time.Since(phaseStart), false, map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to create container: %w", err)
	}
	logger.LogStartupPhase("container", time.Since(phaseStart), true, map[string]any{
		"emailEnabled": cfg.EmailEnabled(),
		"adminEnabled": cfg.AdminPassword != "",
	})

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	// Pages answer 503 until the first load settles.
	go func() {
		loadStart := time.Now()
		_, err := appContainer.ContentLoader.Load(ctx)
		logger.LogStartupPhase("content_load", time.Since(loadStart), err == nil, map[string]any{
			"contentApi": cfg.ContentAPIURL,
		})
	}()

	cleanupWorker := cleanup.NewWorker(appContainer.Sessions, perfTracker, cleanup.NewConfig(cfg), logger)
	go cleanupWorker.Start(ctx)
	logger.Startup().Info("Background cleanup worker started", "interval", cfg.SessionCleanupInterval)

	httpServer := server.New(cfg.Port, routes.SetupRoutes(appContainer), server.Timeouts{
		Read:  cfg.ServerReadTimeout,
		Write: cfg.ServerWriteTimeout,
		Idle:  cfg.ServerIdleTimeout,
	}, logger)

	return serve(httpServer, logger, start, cancelBackgroundTasks, nil)
}

// InitializeStore starts the content store service and blocks until SIGINT
// or SIGTERM.
func InitializeStore() error {
	start := time.Now().UTC()

	cfg, err := config.LoadStore()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	setupGin(cfg.GinMode)

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	perfTracker := performance.NewTracker(nil)

	phaseStart := time.Now()
	storeContainer, err := container.NewStoreContainer(cfg, logger, perfTracker)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	logger.LogStartupPhase("database", time.Since(phaseStart), true, map[string]any{"driver": cfg.DBDriver})

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	if err := storeContainer.DB.CreateSchema(ctx); err != nil {
		storeContainer.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if cfg.SeedFile != "" {
		phaseStart = time.Now()
		written, err := storeContainer.RecordService.SeedFromFile(ctx, cfg.SeedFile)
		logger.LogStartupPhase("seed", time.Since(phaseStart), err == nil, map[string]any{"file": cfg.SeedFile, "written": written})
		if err != nil {
			storeContainer.Close()
			return fmt.Errorf("failed to seed content store: %w", err)
		}
	}
	if cfg.AuthToken == "" {
		logger.Startup().Warn("STORE_AUTH_TOKEN is empty; record writes are not authenticated")
	}

	httpServer := server.New(cfg.Port, routes.SetupStoreRoutes(storeContainer), server.Timeouts{
		Read:  cfg.ServerReadTimeout,
		Write: cfg.ServerWriteTimeout,
		Idle:  cfg.ServerIdleTimeout,
	}, logger)

	return serve(httpServer, logger, start, cancelBackgroundTasks, storeContainer.Close)
}

// serve runs httpServer until a shutdown signal, then stops background work,
// drains requests and runs closer.
func serve(httpServer *server.Server, logger *logging.ChanneledLogger, start time.Time, cancelBackgroundTasks context.CancelFunc, closer func() error) error {
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- httpServer.Start()
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"address", httpServer.Addr())

	select {
	case <-gracefulShutdown:
		logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")
	case err := <-serverErr:
		if err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
			cancelBackgroundTasks()
			if closer != nil {
				_ = closer()
			}
			return err
		}
	}

	shutdownStart := time.Now()
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	if closer != nil {
		if err := closer(); err != nil {
			logger.Shutdown().Error("Error closing resources", "error", err.Error())
		}
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))
	return nil
}

func newLogger(cfg config.LoggingConfig) (*logging.ChanneledLogger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	loggerConfig := logging.DefaultLoggerConfig()
	loggerConfig.OutputToFile = cfg.ToFile
	loggerConfig.LogDirectory = cfg.Dir
	loggerConfig.JSONFormat = cfg.JSON
	loggerConfig.DefaultLevel = level

	logger, err := logging.NewChanneledLogger(loggerConfig)
	if err != nil {
		return nil, err
	}
	for channel, name := range cfg.ChannelLevels {
		channelLevel, err := logging.ParseLevel(name)
		if err != nil {
			return nil, err
		}
		if err := logger.SetChannelLevel(logging.Channel(channel), channelLevel); err != nil {
			return nil, err
		}
	}
	return logger, nil
}

func setupGin(mode string) {
	switch mode {
	case gin.DebugMode, gin.TestMode:
		gin.SetMode(mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
