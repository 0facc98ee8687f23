// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package services

import (
	"context"
	"time"

	"github.com/tomtom215/nasa-explorer/internal/metrics"
)

// DefaultUptimeInterval is how often UptimeService refreshes the gauge.
const DefaultUptimeInterval = 15 * time.Second

// UptimeService keeps app_uptime_seconds current.
type UptimeService struct {
	start    time.Time
	interval time.Duration
	update   func(time.Time)
}

// NewUptimeService reports uptime since start every interval. A non-positive
// interval uses DefaultUptimeInterval.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = DefaultUptimeInterval
	}
	return &UptimeService{start: start, interval: interval, update: metrics.UpdateUptime}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.update(u.start)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			u.update(u.start)
		}
	}
}

// String implements fmt.Stringer.
func (u *UptimeService) String() string {
	return "uptime-reporter"
}
