// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry via promauto:
//
//   - api_*: inbound HTTP requests (method, route pattern, status code)
//   - upstream_*: outbound calls to NASA, labelled by upstream client name
//   - circuit_breaker_*: per-upstream breaker state, outcomes and transitions
//   - app_*: build information and uptime
//
// Circuit breaker state is encoded as 0=closed, 1=half-open, 2=open.
package metrics
