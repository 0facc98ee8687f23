// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nasa-explorer/internal/config"
	"github.com/tomtom215/nasa-explorer/internal/nasa"
)

// fakeNASA records every upstream request made through the real clients.
type fakeNASA struct {
	hits atomic.Int32

	mu    sync.Mutex
	paths []string
	query map[string]string
}

func (f *fakeNASA) record(r *http.Request) {
	f.hits.Add(1)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, r.URL.Path)
	f.query = map[string]string{}
	for k := range r.URL.Query() {
		f.query[k] = r.URL.Query().Get(k)
	}
}

func (f *fakeNASA) lastQuery() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.query
}

// testEnv is a full router wired to real upstream clients that talk to an
// httptest server standing in for NASA.
type testEnv struct {
	handler  http.Handler
	upstream *fakeNASA
	services *nasa.Services
}

func newTestEnv(t *testing.T, upstream http.HandlerFunc, mutate func(*config.Config)) *testEnv {
	t.Helper()

	fake := &fakeNASA{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fake.record(r)
		upstream(w, r)
	}))
	t.Cleanup(server.Close)

	cfg := &config.Config{
		NASA: config.NASAConfig{
			APIKey:          "test-key",
			BaseURL:         server.URL,
			ImageLibraryURL: server.URL,
			Timeout:         2 * time.Second,
		},
		Breaker: config.BreakerConfig{FailureThreshold: 5, SuccessThreshold: 2, Cooldown: time.Hour},
		Server:  config.ServerConfig{Environment: "test"},
		Security: config.SecurityConfig{
			RateLimitReqs:     1000,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"http://localhost:3000"},
		},
	}
	if mutate != nil {
		mutate(cfg)
	}

	services := nasa.NewServices(cfg)
	handler := NewHandler(cfg, services, "test")
	router := NewRouter(handler, NewChiMiddleware(ChiMiddlewareConfigFromSecurity(cfg.Security)))

	return &testEnv{handler: router.SetupChi(), upstream: fake, services: services}
}

func (e *testEnv) do(t *testing.T, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

// envelope is a loosely typed view of models.Envelope for assertions.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Message   string `json:"message"`
		Code      string `json:"code"`
		RequestID string `json:"request_id"`
		Stack     string `json:"stack"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return env
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}
