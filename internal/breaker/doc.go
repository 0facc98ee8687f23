// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

// Package breaker implements the per-upstream circuit breaker.
//
// Each upstream client owns one Breaker. The state machine is provided by
// sony/gobreaker's two-step breaker:
//
//   - CLOSED: calls are allowed. FailureThreshold consecutive failures open
//     the circuit. A success resets the failure count.
//   - OPEN: calls are refused with ErrOpen until Cooldown has elapsed. The
//     first call after that moves the breaker to HALF_OPEN and is admitted.
//   - HALF_OPEN: one probe at a time. SuccessThreshold consecutive probe
//     successes close the circuit; any probe failure reopens it.
//
// Breaker adds a probe gate on top of gobreaker so that two concurrent
// callers can never both be admitted as half-open probes, plus logging and
// Prometheus metrics for every outcome and transition.
//
// Usage:
//
//	done, err := b.Allow()
//	if err != nil {
//	    return err // refused, no call was made
//	}
//	resp, err := doCall()
//	done(err) // nil records a success; context.Canceled is not counted
package breaker
