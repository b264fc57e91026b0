package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-character-wizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-character-wizard/internal/config"
	"github.com/KirkDiggler/rpg-character-wizard/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-character-wizard/internal/handlers/http/v1alpha1"
	"github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/catalog"
	diceorch "github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/dice"
	wizardorch "github.com/KirkDiggler/rpg-character-wizard/internal/orchestrators/wizard"
	"github.com/KirkDiggler/rpg-character-wizard/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-character-wizard/internal/redis"
	catalogrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/catalog"
	sessionrepo "github.com/KirkDiggler/rpg-character-wizard/internal/repositories/session"
	"github.com/KirkDiggler/rpg-character-wizard/internal/rules"
	"github.com/KirkDiggler/rpg-character-wizard/internal/services/wizard"
)

const shutdownTimeout = 30 * time.Second

var (
	port    int
	envFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the character wizard HTTP API. Settings come from the environment (and .env); flags override them.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&port, "port", 8080, "HTTP server port (overrides PORT)")
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = port
	}

	if err := setupLogging(cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, closeDeps, err := buildService(cfg)
	if err != nil {
		return err
	}
	defer closeDeps()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		WizardService: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           v1alpha1.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go sweepSessions(ctx, service, cfg.SessionSweepInterval)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", cfg.Port, "cache_backend", cfg.CatalogCacheBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal, gracefully stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}
		slog.Info("Server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogging(cfg *config.Config) error {
	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == config.LogFormatJSON {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
	return nil
}

// buildService wires the wizard and everything under it. The returned func
// releases external connections.
func buildService(cfg *config.Config) (wizard.Service, func(), error) {
	registry := rules.Default()

	client, err := external.New(&external.Config{
		BaseURL:     cfg.DnD5eAPIBaseURL,
		HTTPTimeout: cfg.DnD5eHTTPTimeout,
		CacheTTL:    cfg.CatalogCacheTTL,
		Rules:       registry,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create reference data client: %w", err)
	}

	cache, closeCache, err := buildCatalogCache(cfg)
	if err != nil {
		return nil, nil, err
	}

	bus := events.NewBus()
	rpgtoolkit.SubscribeLogger(bus, slog.Default())
	publisher := rpgtoolkit.NewPublisher(bus)

	loader, err := catalog.NewLoader(&catalog.Config{
		Client:    client,
		Cache:     cache,
		Publisher: publisher,
	})
	if err != nil {
		closeCache()
		return nil, nil, fmt.Errorf("failed to create catalog loader: %w", err)
	}

	diceService, err := diceorch.NewOrchestrator(&diceorch.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("roll"),
	})
	if err != nil {
		closeCache()
		return nil, nil, fmt.Errorf("failed to create dice service: %w", err)
	}

	sessions, err := sessionrepo.NewMemory(&sessionrepo.Config{TTL: cfg.SessionTTL})
	if err != nil {
		closeCache()
		return nil, nil, fmt.Errorf("failed to create session store: %w", err)
	}

	orchestrator, err := wizardorch.New(&wizardorch.Config{
		SessionRepo: sessions,
		Loader:      loader,
		DiceService: diceService,
		IDGenerator: idgen.NewUUID("session"),
		Rules:       registry,
		Publisher:   publisher,
		LoadTimeout: cfg.CatalogLoadTimeout,
	})
	if err != nil {
		closeCache()
		return nil, nil, fmt.Errorf("failed to create wizard: %w", err)
	}

	return orchestrator, closeCache, nil
}

func buildCatalogCache(cfg *config.Config) (catalogrepo.Repository, func(), error) {
	if cfg.CatalogCacheBackend != config.CacheBackendRedis {
		repo, err := catalogrepo.NewMemory(&catalogrepo.MemoryConfig{TTL: cfg.CatalogCacheTTL})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create catalog cache: %w", err)
		}
		return repo, func() {}, nil
	}

	rc, err := redisclient.NewClientFromURL(cfg.RedisURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeFn := func() {
		if err := rc.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}

	repo, err := catalogrepo.NewRedis(&catalogrepo.RedisConfig{Client: rc, TTL: cfg.CatalogCacheTTL})
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to create catalog cache: %w", err)
	}
	return repo, closeFn, nil
}

// sweepSessions drops expired sessions until ctx is done
func sweepSessions(ctx context.Context, service wizard.Service, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out, err := service.SweepSessions(ctx)
			if err != nil {
				slog.Warn("Session sweep failed", "error", err)
				continue
			}
			if len(out.Deleted) > 0 {
				slog.Info("Swept expired sessions", "count", len(out.Deleted))
			}
		}
	}
}
