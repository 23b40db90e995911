// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the portfolio API server.
// It loads configuration, opens the document store, seeds sample content,
// sets up routing, and starts the HTTP server with graceful shutdown support.
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

	"github.com/redis/go-redis/v9"

	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/handlers"
	"portfolio/internal/middleware"
	"portfolio/internal/router"
	"portfolio/internal/service"
	"portfolio/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Text logs in development, JSON everywhere else.
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"store", cfg.StoreBackend,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	colls, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.SeedSampleData {
		if err := database.Seed(ctx, colls.Projects, colls.Testimonials); err != nil {
			return fmt.Errorf("seed sample data: %w", err)
		}
	}

	// The response cache is optional; the API serves straight from the
	// store when Valkey is not configured or unreachable.
	var responseCache *cache.ResponseCache
	if cfg.CacheEnabled() {
		var valkeyClient *redis.Client
		valkeyClient, err = cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			slog.Warn("valkey unavailable, response cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			responseCache = cache.NewResponseCache(valkeyClient, cfg.CacheTTL)
		}
	} else {
		slog.Info("valkey not configured, response cache disabled")
	}

	contactLimiter := middleware.NewRateLimiter(cfg.ContactRateLimit, time.Minute)
	defer contactLimiter.Stop()

	r := router.New(router.Handlers{
		Projects:     handlers.NewProjects(service.NewProjects(colls.Projects), responseCache),
		Contacts:     handlers.NewContacts(service.NewContacts(colls.Contacts)),
		Testimonials: handlers.NewTestimonials(service.NewTestimonials(colls.Testimonials), responseCache),
		Profile:      handlers.NewProfile(service.NewProfile(colls.Profile)),
	}, router.Options{
		CORSOrigins:    cfg.CORSOrigins,
		ContactLimiter: contactLimiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// openStore returns the configured collections and a function releasing
// the underlying connection.
func openStore(ctx context.Context, cfg *config.Config) (*store.Collections, func(), error) {
	if cfg.StoreBackend == config.BackendMemory {
		slog.Warn("using in-memory store, data is lost on restart")
		return store.NewMemory(), func() {}, nil
	}

	db, err := database.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}

	return store.NewPostgres(db), func() {
		if err := db.Close(); err != nil {
			slog.Warn("close database", "error", err)
		}
	}, nil
}
