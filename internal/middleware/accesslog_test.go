// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/nasa-explorer/internal/logging"
)

func TestAccessLog_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	original := logging.Logger()
	logging.SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	t.Cleanup(func() { logging.SetLogger(original) })

	handler := RequestID(AccessLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/apod?date=2024-01-01", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	for _, want := range []string{
		`"message":"Request completed"`,
		`"status":418`,
		`"path":"/api/apod"`,
		`"query":"date=2024-01-01"`,
		`"bytes":15`,
		`"request_id":"req-123"`,
		`"level":"info"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %s: %s", want, out)
		}
	}
}

func TestAccessLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path   string
		status int
		want   zerolog.Level
	}{
		{"/api/neo", 200, zerolog.InfoLevel},
		{"/api/neo", 400, zerolog.InfoLevel},
		{"/api/neo", 503, zerolog.WarnLevel},
		{"/health", 200, zerolog.DebugLevel},
		{"/metrics", 200, zerolog.DebugLevel},
		{"/health/ready", 503, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		if got := accessLevel(tt.path, tt.status); got != tt.want {
			t.Errorf("accessLevel(%s, %d) = %s, want %s", tt.path, tt.status, got, tt.want)
		}
	}
}
