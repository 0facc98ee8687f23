// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package breaker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/nasa-explorer/internal/logging"
	"github.com/tomtom215/nasa-explorer/internal/metrics"
)

// Defaults applied to zero-valued Settings fields.
const (
	DefaultFailureThreshold = 5
	DefaultSuccessThreshold = 2
	DefaultCooldown         = 30 * time.Second
)

var (
	// ErrOpen is returned while the circuit is open and cooling down.
	ErrOpen = errors.New("circuit breaker is open")

	// ErrProbeInFlight is returned while a half-open probe is outstanding.
	ErrProbeInFlight = errors.New("circuit breaker half-open probe in flight")
)

// State is the externally visible breaker state.
type State string

const (
	StateClosed   State = "CLOSED"
	StateOpen     State = "OPEN"
	StateHalfOpen State = "HALF_OPEN"
)

// Settings configures a Breaker.
type Settings struct {
	Name             string
	FailureThreshold int
	SuccessThreshold int

	// Cooldown is the time spent OPEN before a probe is admitted.
	// Zero admits a probe on the next call; negative means DefaultCooldown.
	Cooldown time.Duration

	// IsExcluded reports outcomes that count neither as success nor failure.
	// Nil excludes context.Canceled.
	IsExcluded func(err error) bool
}

// IsCanceled is the default IsExcluded.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

func (s Settings) withDefaults() Settings {
	if s.FailureThreshold <= 0 {
		s.FailureThreshold = DefaultFailureThreshold
	}
	if s.SuccessThreshold <= 0 {
		s.SuccessThreshold = DefaultSuccessThreshold
	}
	if s.Cooldown < 0 {
		s.Cooldown = DefaultCooldown
	}
	if s.IsExcluded == nil {
		s.IsExcluded = IsCanceled
	}
	return s
}

// Snapshot is a read-only view of a breaker for health reporting.
type Snapshot struct {
	Name                 string     `json:"name"`
	State                State      `json:"state"`
	ConsecutiveFailures  uint32     `json:"consecutive_failures"`
	ConsecutiveSuccesses uint32     `json:"consecutive_successes"`
	NextTryAt            *time.Time `json:"next_try_at,omitempty"`
}

// Breaker guards calls to one upstream. It is safe for concurrent use.
type Breaker struct {
	name     string
	settings Settings
	cb       *gobreaker.TwoStepCircuitBreaker[struct{}]

	// mu serializes admission so the half-open probe gate cannot race.
	mu      sync.Mutex
	probing bool

	// nextTry is the unix-nano time the current open period ends, 0 otherwise.
	nextTry atomic.Int64
}

// New creates a breaker in the CLOSED state.
func New(s Settings) *Breaker {
	s = s.withDefaults()
	b := &Breaker{name: s.Name, settings: s}

	// gobreaker treats a non-positive timeout as its own 60s default.
	timeout := s.Cooldown
	if timeout <= 0 {
		timeout = time.Nanosecond
	}

	b.cb = gobreaker.NewTwoStepCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: uint32(s.SuccessThreshold), //nolint:gosec // bounded by config validation
		Interval:    0,                          // counts are only cleared on state change
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(s.FailureThreshold) //nolint:gosec // bounded by config validation
		},
		IsExcluded:    s.IsExcluded,
		OnStateChange: b.onStateChange,
	})

	metrics.CircuitBreakerState.WithLabelValues(s.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(s.Name).Set(0)

	return b
}

// Name returns the breaker name, which is also its metrics label.
func (b *Breaker) Name() string {
	return b.name
}

// Settings returns the effective settings after defaults.
func (b *Breaker) Settings() Settings {
	return b.settings
}

// Allow asks permission for one upstream call. On success the caller must
// invoke done exactly once with the call's error (nil on success); later
// invocations are ignored. Errors matching Settings.IsExcluded release the
// slot without counting. On refusal err is ErrOpen or ErrProbeInFlight and no
// call may be made.
//
// Allow may move the breaker from OPEN to HALF_OPEN when the cooldown has elapsed.
func (b *Breaker) Allow() (done func(err error), err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// probing is only set while HALF_OPEN and only cleared by the admitted call's done.
	if b.probing {
		b.reject(ErrProbeInFlight)
		return nil, ErrProbeInFlight
	}

	cbDone, err := b.cb.Allow()
	if err != nil {
		if errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = ErrProbeInFlight
		} else {
			err = ErrOpen
		}
		b.reject(err)
		return nil, err
	}

	// cb.Allow may itself have moved OPEN -> HALF_OPEN. Nothing else can
	// change the state while mu is held.
	probe := b.cb.State() == gobreaker.StateHalfOpen
	if probe {
		b.probing = true
	}

	var once sync.Once
	return func(callErr error) {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			cbDone(callErr)
			if probe {
				b.probing = false
			}

			metrics.RecordBreakerResult(b.name, b.outcome(callErr), b.cb.Counts().ConsecutiveFailures)
		})
	}, nil
}

func (b *Breaker) outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case b.settings.IsExcluded(err):
		return "excluded"
	default:
		return "failure"
	}
}

func (b *Breaker) reject(err error) {
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
	log := logging.WithComponent("breaker")
	log.Debug().Str("breaker", b.name).Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
}

// State returns the current state, applying any pending cooldown expiry.
func (b *Breaker) State() State {
	return fromGobreaker(b.cb.State())
}

// Snapshot returns the current state and counters.
func (b *Breaker) Snapshot() Snapshot {
	state := b.cb.State()
	counts := b.cb.Counts()

	s := Snapshot{
		Name:                 b.name,
		State:                fromGobreaker(state),
		ConsecutiveFailures:  counts.ConsecutiveFailures,
		ConsecutiveSuccesses: counts.ConsecutiveSuccesses,
	}
	if state == gobreaker.StateOpen {
		if ns := b.nextTry.Load(); ns > 0 {
			next := time.Unix(0, ns).UTC()
			s.NextTryAt = &next
		}
	}
	return s
}

// onStateChange runs with gobreaker's internal lock held.
func (b *Breaker) onStateChange(name string, from, to gobreaker.State) {
	if to == gobreaker.StateOpen {
		b.nextTry.Store(time.Now().Add(b.settings.Cooldown).UnixNano())
	} else {
		b.nextTry.Store(0)
	}

	fromStr := stateToString(from)
	toStr := stateToString(to)

	log := logging.WithComponent("breaker")
	event := log.Info()
	if to == gobreaker.StateOpen {
		event = log.Warn().Dur("cooldown", b.settings.Cooldown)
	}
	event.Str("breaker", name).Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

	metrics.RecordBreakerTransition(name, fromStr, toStr, stateToFloat(to))
	if to == gobreaker.StateClosed {
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	}
}

func fromGobreaker(state gobreaker.State) State {
	switch state {
	case gobreaker.StateOpen:
		return StateOpen
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	default:
		return StateClosed
	}
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
