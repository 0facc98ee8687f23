// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/goccy/go-json"
)

func TestErrorConstructors(t *testing.T) {
	t.Parallel()

	cause := errors.New("dial tcp: connection refused")

	tests := []struct {
		name       string
		err        *Error
		kind       ErrorKind
		status     int
		code       string
		message    string
		wantUnwrap bool
	}{
		{"validation", NewValidationError(CodeDateRangeExceeded, MsgDateRangeExceeded), KindValidation, 400, CodeDateRangeExceeded, MsgDateRangeExceeded, false},
		{"validation default code", NewValidationError("", "Search query is required"), KindValidation, 400, CodeValidation, "Search query is required", false},
		{"upstream keeps status", NewUpstreamError(429, "rate limited", nil), KindUpstream, 429, CodeUpstream, "rate limited", false},
		{"upstream without status", NewUpstreamError(0, "", cause), KindUpstream, 500, CodeUpstream, MsgNASAAPIError, true},
		{"service unavailable", NewServiceUnavailableError(cause), KindServiceUnavailable, 503, CodeServiceUnavailable, MsgExternalServiceUnavailable, true},
		{"internal", NewInternalError("Error fetching EPIC images", cause), KindInternal, 500, CodeInternal, "Error fetching EPIC images", true},
		{"not found", NewNotFoundError("Route /nope not found"), KindNotFound, http.StatusNotFound, CodeNotFound, "Route /nope not found", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.status)
			}
			if tt.err.Code != tt.code {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.code)
			}
			if tt.err.Message != tt.message {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.message)
			}
			if got := errors.Is(tt.err, cause); got != tt.wantUnwrap {
				t.Errorf("errors.Is(cause) = %v, want %v", got, tt.wantUnwrap)
			}
		})
	}
}

func TestAsErrorThroughWrapping(t *testing.T) {
	t.Parallel()

	base := NewValidationError(CodeInvalidDateFormat, MsgInvalidDateFormat)
	wrapped := fmt.Errorf("apod: %w", base)

	got, ok := AsError(wrapped)
	if !ok || got != base {
		t.Fatalf("AsError did not find the typed error: %v", wrapped)
	}
	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind(validation) = false")
	}
	if IsKind(errors.New("plain"), KindInternal) {
		t.Error("plain errors carry no kind")
	}
}

func TestEnvelopeJSON(t *testing.T) {
	t.Parallel()

	ok, err := json.Marshal(OK(APOD{Date: "2024-01-01", Title: "Nebula", URL: "u", MediaType: "image"}))
	if err != nil {
		t.Fatal(err)
	}
	want := `{"success":true,"data":{"date":"2024-01-01","title":"Nebula","explanation":"","url":"u","media_type":"image"}}`
	if string(ok) != want {
		t.Errorf("OK envelope = %s, want %s", ok, want)
	}

	fail, err := json.Marshal(Fail(ErrorBody{Message: MsgDateRangeExceeded, Code: CodeDateRangeExceeded}))
	if err != nil {
		t.Fatal(err)
	}
	want = `{"success":false,"error":{"message":"Date range cannot exceed 7 days","code":"DATE_RANGE_EXCEEDED"}}`
	if string(fail) != want {
		t.Errorf("Fail envelope = %s, want %s", fail, want)
	}
}
