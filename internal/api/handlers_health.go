// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/nasa-explorer/internal/breaker"
	"github.com/tomtom215/nasa-explorer/internal/metrics"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status          string             `json:"status"`
	Message         string             `json:"message"`
	Timestamp       time.Time          `json:"timestamp"`
	Uptime          float64            `json:"uptime"`
	Version         string             `json:"version"`
	Environment     string             `json:"environment"`
	CircuitBreakers []breaker.Snapshot `json:"circuit_breakers"`
}

// ReadinessStatus is the body of GET /health/ready.
type ReadinessStatus struct {
	Status          string             `json:"status"`
	Ready           bool               `json:"ready"`
	Timestamp       time.Time          `json:"timestamp"`
	CircuitBreakers []breaker.Snapshot `json:"circuit_breakers"`
}

// Health reports process health and every upstream breaker. It is always
// 200 while the process can serve requests.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	metrics.UpdateUptime(h.startTime)

	writeJSON(w, http.StatusOK, HealthStatus{
		Status:          "OK",
		Message:         "NASA Data Explorer API is running",
		Timestamp:       time.Now().UTC(),
		Uptime:          time.Since(h.startTime).Seconds(),
		Version:         h.version,
		Environment:     h.environment,
		CircuitBreakers: h.breakerSnapshots(),
	})
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "alive",
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady is the readiness probe. It returns 503 only when every upstream
// breaker is OPEN.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snapshots := h.breakerSnapshots()

	ready := len(snapshots) == 0
	for _, s := range snapshots {
		if s.State != breaker.StateOpen {
			ready = true
			break
		}
	}

	status := ReadinessStatus{
		Status:          "ready",
		Ready:           ready,
		Timestamp:       time.Now().UTC(),
		CircuitBreakers: snapshots,
	}
	code := http.StatusOK
	if !ready {
		status.Status = "not_ready"
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

func (h *Handler) breakerSnapshots() []breaker.Snapshot {
	upstreams := h.services.Upstreams()
	snapshots := make([]breaker.Snapshot, 0, len(upstreams))
	for _, u := range upstreams {
		snapshots = append(snapshots, u.Breaker().Snapshot())
	}
	return snapshots
}
