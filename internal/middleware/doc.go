// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package middleware provides the HTTP middleware shared by every route.

All middleware use the chi signature func(http.Handler) http.Handler so they
compose with r.Use().

Key Components:

  - RequestID: X-Request-ID and X-Correlation-ID propagation into the logging context
  - AccessLog: one structured zerolog line per request
  - PrometheusMetrics: api_requests_total and api_request_duration_seconds by route pattern
  - SecurityHeaders: conservative response headers for a JSON API

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.PrometheusMetrics)

Thread Safety:

All middleware are stateless apart from Prometheus collectors, which are safe
for concurrent use.
*/
package middleware
