// AgriLens - Soil Classification and Crop Suitability Recommendations
// Copyright 2026 AgriLens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/agrilens/agrilens

// Package main is the entry point for the AgriLens server application.
//
// AgriLens classifies soil samples and recommends crops with projected
// economics for a given farm. It accepts laboratory soil readings plus
// optional weather and market context, scores a built-in crop catalog
// against them, and returns ranked recommendations with yield, cost,
// and profit estimates.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: settings from environment variables and config files (Koanf v2)
//  2. Logging: zerolog structured logging per the loaded configuration
//  3. Catalog: the built-in crop profile catalog
//  4. Engine: the recommendation engine and soil classifier
//  5. HTTP Server: REST API wired through Chi with CORS, rate limiting,
//     request IDs, and Prometheus metrics
//  6. Supervisor: suture tree that owns the HTTP server lifecycle
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (HTTP_PORT, LOG_LEVEL, ...)
//   - Config file (config.yaml, or the path in CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Reports services that failed to stop within the timeout
//
// # Example Usage
//
// Development with console logs:
//
//	export LOG_FORMAT=console
//	export LOG_LEVEL=debug
//	./agrilens
//
// Production behind a reverse proxy:
//
//	export ENVIRONMENT=production
//	export HTTP_PORT=8080
//	export CORS_ORIGINS=https://farm.example.com
//	./agrilens
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrilens/agrilens/internal/api"
	"github.com/agrilens/agrilens/internal/catalog"
	"github.com/agrilens/agrilens/internal/config"
	"github.com/agrilens/agrilens/internal/engine"
	"github.com/agrilens/agrilens/internal/logging"
	"github.com/agrilens/agrilens/internal/supervisor"
	"github.com/agrilens/agrilens/internal/supervisor/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting AgriLens")

	// Build the crop catalog and recommendation engine
	cat := catalog.Default()
	eng, err := engine.New(cat, cfg.Engine)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	logging.Info().Int("crops", cat.Len()).Msg("Crop catalog loaded")

	if cfg.API.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	if len(cfg.API.CORSOrigins) == 0 {
		logging.Info().Msg("No CORS origins configured; cross-origin requests will be rejected")
	}

	// Wire handlers and middleware into the router
	handler := api.NewHandler(eng, cat, version)
	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins:   cfg.API.CORSOrigins,
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,
		RateLimitRequests:    cfg.API.RateLimitRequests,
		RateLimitWindow:      cfg.API.RateLimitWindow,
		RateLimitDisabled:    cfg.API.RateLimitDisabled,
	})
	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
