// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/nasa-explorer/internal/api"
	"github.com/tomtom215/nasa-explorer/internal/config"
	"github.com/tomtom215/nasa-explorer/internal/logging"
	"github.com/tomtom215/nasa-explorer/internal/metrics"
	"github.com/tomtom215/nasa-explorer/internal/nasa"
	"github.com/tomtom215/nasa-explorer/internal/supervisor"
	"github.com/tomtom215/nasa-explorer/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("nasa_base_url", cfg.NASA.BaseURL).
		Bool("demo_key", cfg.NASA.APIKey == config.DemoAPIKey).
		Msg("Starting NASA Data Explorer API")

	if cfg.NASA.APIKey == config.DemoAPIKey {
		logging.Warn().Msg("Using DEMO_KEY: NASA limits it to 30 requests per hour per IP. Set NASA_API_KEY for real traffic")
	}
	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	metrics.SetAppInfo(version, runtime.Version(), startTime)

	nasaServices := nasa.NewServices(cfg)
	handler := api.NewHandler(cfg, nasaServices, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))
	tree.AddBackgroundService(services.NewUptimeService(startTime, services.DefaultUptimeInterval))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
