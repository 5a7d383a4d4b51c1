package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/futures-relic/relic-atelier/internal/adapter"
	"github.com/futures-relic/relic-atelier/internal/api/middleware"
	"github.com/futures-relic/relic-atelier/internal/api/server"
	"github.com/futures-relic/relic-atelier/internal/api/shared/executor"
	"github.com/futures-relic/relic-atelier/internal/cache"
	"github.com/futures-relic/relic-atelier/internal/catalog"
	"github.com/futures-relic/relic-atelier/internal/config"
	"github.com/futures-relic/relic-atelier/internal/logger"
	"github.com/futures-relic/relic-atelier/internal/providers/atomicassets"
	"github.com/futures-relic/relic-atelier/internal/providers/waxchain"
	"github.com/futures-relic/relic-atelier/internal/store"
	"github.com/futures-relic/relic-atelier/internal/story"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Relic Atelier API", zap.String("collection", cfg.Collection))

	// Initialize progress and scene storage
	dataStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize storage",
			zap.Error(err),
			zap.String("driver", cfg.Storage.Driver))
	}
	logger.InfoCtx(ctx, "Storage ready", zap.String("driver", cfg.Storage.Driver))

	// Seed story scenes
	seeded, err := story.SeedScenes(ctx, dataStore, cfg.Scenes.SeedPath)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to seed story scenes",
			zap.Error(err),
			zap.String("path", cfg.Scenes.SeedPath))
	}
	if seeded > 0 {
		logger.InfoCtx(ctx, "Seeded story scenes", zap.Int("count", seeded))
	}

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(30 * time.Second)

	// Initialize upstream clients
	assetsClient := atomicassets.NewClient(cfg.AtomicAssets.APIURL, cfg.AtomicAssets.IPFSGateway, httpClient)
	chainClient := waxchain.NewClient(cfg.Chain.APIURL, httpClient, jsonAdapter)

	// Blend catalog sources run concurrently per fetch
	fetcher := catalog.NewFetcher(
		catalog.NewNeftySource(chainClient),
		catalog.NewBlenderizerSource(chainClient),
	)
	defer fetcher.Stop()

	// Template metadata cache with background sweeping
	templateCache := cache.NewTTLCache(cfg.Cache.TemplateTTL, clock)
	go sweepLoop(ctx, templateCache, cfg.Cache.SweepInterval)

	storyService := story.NewService(dataStore, clock)

	exec := executor.NewExecutor(
		executor.Config{Collection: cfg.Collection},
		assetsClient,
		fetcher,
		templateCache,
		storyService,
		dataStore,
		clock,
	)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, exec)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}

// openStore builds the progress store for the configured driver.
func openStore(ctx context.Context, cfg *config.APIConfig) (store.Store, error) {
	switch cfg.Storage.Driver {
	case "postgres":
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := store.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		if err := store.ConfigureConnectionPool(db,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
			cfg.Database.ConnMaxLifetime,
			cfg.Database.ConnMaxIdleTime,
		); err != nil {
			return nil, fmt.Errorf("failed to configure connection pool: %w", err)
		}
		return store.NewPGStore(db), nil
	case "redis":
		return store.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// sweepLoop evicts expired template cache entries until ctx is done.
func sweepLoop(ctx context.Context, templates cache.TemplateCache, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			templates.Sweep(ctx)
		}
	}
}
