// Package main implements the entry point for the vietger server, a
// German-Vietnamese vocabulary quiz service.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"vietger/internal/catalog"
	"vietger/internal/config"
	"vietger/internal/gamification"
	"vietger/internal/platform/logger"
	"vietger/internal/platform/memory"
	"vietger/internal/platform/postgres"
	"vietger/internal/platform/speech"
	"vietger/internal/quiz"
	"vietger/internal/store"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}
	appLogger.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("database_configured", cfg.Database.URL != ""),
		slog.Int("decks", len(cfg.Catalog.Decks)))

	// Load the word catalog up front; the engine does no work until it is
	// ready. Missing or malformed deck files yield empty decks, not a crash.
	sources := make(map[string]catalog.DeckSource, len(cfg.Catalog.Decks))
	for id, files := range cfg.Catalog.Decks {
		sources[id] = catalog.DeckSource{Words: files.Words, Sentences: files.Sentences}
	}
	cat := catalog.Load(sources, appLogger)

	learnedStore, gamificationStore, closeDB, err := setupStores(cfg, appLogger)
	if err != nil {
		return err
	}
	defer closeDB()

	rewarder := gamification.NewService(gamificationStore, appLogger)
	speaker := speech.NewLogSpeaker(appLogger, cfg.Speech.Rate)
	registry := quiz.NewRegistry()

	purgeDone := make(chan struct{})
	defer close(purgeDone)
	go purgeIdleSessions(registry, appLogger, purgeDone)

	router := setupRouter(cfg, appLogger, cat, learnedStore, rewarder, speaker, registry)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		appLogger.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

const (
	// sessionIdleTTL is how long an untouched quiz session survives before
	// the registry reclaims it.
	sessionIdleTTL = 30 * time.Minute

	sessionPurgeInterval = 5 * time.Minute
)

// purgeIdleSessions periodically reclaims quiz sessions abandoned by their
// clients, until done is closed.
func purgeIdleSessions(registry *quiz.Registry, appLogger *slog.Logger, done <-chan struct{}) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if purged := registry.PurgeIdle(sessionIdleTTL); purged > 0 {
				appLogger.Info("purged idle quiz sessions",
					slog.Int("count", purged),
					slog.Int("remaining", registry.Len()))
			}
		}
	}
}

// setupStores picks the persistence backend: postgres with migrations when a
// database URL is configured, in-memory stores otherwise.
func setupStores(
	cfg *config.Config,
	appLogger *slog.Logger,
) (store.LearnedStore, store.GamificationStore, func(), error) {
	if cfg.Database.URL == "" {
		appLogger.Info("no database configured, using in-memory stores")
		return memory.NewLearnedStore(), memory.NewGamificationStore(), func() {}, nil
	}

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, nil, nil, err
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			appLogger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}

	if err := runMigrations(db, appLogger); err != nil {
		closeDB()
		return nil, nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return postgres.NewPostgresLearnedStore(db, appLogger),
		postgres.NewPostgresGamificationStore(db, appLogger),
		closeDB, nil
}
