// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package config loads and validates the NASA Data Explorer configuration.

Configuration is layered with koanf:

 1. Defaults from the Config struct (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, config.yaml, /etc/nasa-explorer/config.yaml)
 3. Environment variables, mapped explicitly to config paths

Environment variables not listed in the mapping table are ignored.

# Environment Variables

NASA upstream:
  - NASA_API_KEY: API key injected as the api_key query parameter (default: DEMO_KEY)
  - NASA_BASE_URL: Base URL of the NASA Open APIs (default: https://api.nasa.gov)
  - NASA_IMAGE_LIBRARY_URL: Image and Video Library URL (default: https://images-api.nasa.gov)
  - NASA_TIMEOUT: Per-call upstream timeout (default: 10s)
  - NASA_RATE_LIMIT: Outbound requests per second per upstream, 0 disables (default: 0)
  - NASA_RATE_BURST: Outbound burst size (default: 1)

Circuit breaker:
  - BREAKER_FAILURE_THRESHOLD: Consecutive failures before opening (default: 5)
  - BREAKER_SUCCESS_THRESHOLD: Half-open successes before closing (default: 2)
  - BREAKER_COOLDOWN: Time spent open before a probe is admitted (default: 30s)

HTTP server:
  - HTTP_HOST, HTTP_PORT (or PORT), HTTP_TIMEOUT
  - ENVIRONMENT (or NODE_ENV): development, test or production

Security:
  - CORS_ORIGINS: Comma-separated allowed origins
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
*/
package config
