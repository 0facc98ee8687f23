// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

// Package logging provides zerolog-based structured logging for the NASA
// Data Explorer service.
//
// A single global logger is configured at startup from the logging section
// of the service configuration. JSON output is the default; the console
// format is intended for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Str("addr", addr).Msg("Server starting")
//
// # Request Context
//
// The HTTP layer stores a request ID and a short correlation ID in the
// request context. Ctx returns a logger carrying both, so upstream calls
// made on behalf of a request can be traced back to it:
//
//	logging.Ctx(ctx).Warn().Str("upstream", name).Msg("Upstream call failed")
//
// # Supervisor Integration
//
// NewSlogLogger adapts the global logger to log/slog for sutureslog.
package logging
