// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"time"

	"github.com/tomtom215/nasa-explorer/internal/config"
	"github.com/tomtom215/nasa-explorer/internal/nasa"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handler.go: Handler struct and constructor (this file)
//   - handlers_nasa.go: NASA proxy endpoints
//   - handlers_health.go: health and readiness probes
//   - handlers_info.go: API info document
//   - handlers_fallback.go: 404 and 405 handlers
type Handler struct {
	services    *nasa.Services
	version     string
	environment string
	development bool
	startTime   time.Time
}

// NewHandler creates the API handler.
//
// Example:
//
//	services := nasa.NewServices(cfg)
//	handler := api.NewHandler(cfg, services, version)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)))
//	http.ListenAndServe(addr, router.SetupChi())
func NewHandler(cfg *config.Config, services *nasa.Services, version string) *Handler {
	return &Handler{
		services:    services,
		version:     version,
		environment: cfg.Server.Environment,
		development: cfg.IsDevelopment(),
		startTime:   time.Now(),
	}
}
