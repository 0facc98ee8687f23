// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package main is the entry point for the NASA Data Explorer API server.

The server is a read-only JSON proxy over NASA Open APIs. Each upstream
(APOD, NeoWs, Mars Rover Photos, EPIC, Image and Video Library) gets its own
HTTP client, outbound rate limiter and circuit breaker, so one failing NASA
service never blocks the others.

# Process Layout

	RootSupervisor ("nasa-explorer")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server (chi router)
	└── BackgroundSupervisor ("background-layer")
	    └── Uptime reporter

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Metrics: app_info and uptime gauges
 4. Upstream clients: one breaker per NASA service
 5. Router: chi with request IDs, access logs, CORS, security headers, rate limiting
 6. Supervisor Tree: suture v4 runs the HTTP server until SIGINT/SIGTERM

# Configuration

Common environment variables:

	NASA_API_KEY             api.nasa.gov key (default DEMO_KEY)
	PORT / HTTP_PORT         listen port (default 8000)
	NODE_ENV / ENVIRONMENT   development exposes error stacks
	BREAKER_FAILURE_THRESHOLD, BREAKER_SUCCESS_THRESHOLD, BREAKER_COOLDOWN
	CORS_ORIGINS             comma-separated allowed origins
	LOG_LEVEL, LOG_FORMAT

# Signal Handling

On SIGINT or SIGTERM the server stops accepting connections and waits up to
10s for in-flight requests.
*/
package main
