// Package main is the entry point for the cruise blog CMS server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cruisecms/internal/ai"
	"cruisecms/internal/cache"
	"cruisecms/internal/config"
	"cruisecms/internal/database"
	"cruisecms/internal/handlers"
	"cruisecms/internal/render"
	"cruisecms/internal/router"
	"cruisecms/internal/store"
)

func main() {
	// Structured logger for the whole process.
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables. This fails when the
	// Anthropic API key is missing; generation has no degraded mode.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development fixtures (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey for the public page cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	pageCache := cache.NewPageCache(valkeyClient, cache.DefaultPageTTL)

	// Page markup comes from templates compiled into this binary, so
	// entries cached by a previous build may be stale. Start clean.
	pageCache.InvalidateAll(context.Background())

	// Initialize the HTML template renderer for public pages.
	renderer, err := render.New()
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	// Initialize data stores.
	shipStore := store.NewShipStore(db)
	reviewStore := store.NewReviewStore(db)
	imageStore := store.NewImageStore(db)
	topicStore := store.NewTopicStore(db)
	styleGuideStore := store.NewStyleGuideStore(db)
	articleStore := store.NewArticleStore(db)

	// Initialize the Claude provider for article generation.
	provider := ai.NewClaude(ai.ProviderConfig{
		APIKey:  cfg.ClaudeKey,
		Model:   cfg.ClaudeModel,
		BaseURL: cfg.ClaudeBaseURL,
	})
	slog.Info("ai provider initialized", "provider", provider.Name())

	// Create handler groups with their dependencies.
	apiHandlers := handlers.NewAPI(shipStore, reviewStore, imageStore, topicStore, styleGuideStore, articleStore, provider, pageCache)
	publicHandlers := handlers.NewPublic(articleStore, renderer, pageCache)

	// Set up the Chi router with all middleware and routes.
	r := router.New(apiHandlers, publicHandlers)

	// WriteTimeout must accommodate article generation, which streams from
	// the model for minutes on long articles.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
