// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

const apodBody = `{
	"date": "2024-01-01",
	"title": "NGC 1232",
	"explanation": "A grand design spiral galaxy.",
	"url": "https://apod.nasa.gov/image.jpg",
	"hdurl": "https://apod.nasa.gov/image_hd.jpg",
	"media_type": "image",
	"service_version": "v1",
	"copyright": ""
}`

func TestAPODService_GetAPOD(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().respond(pathAPOD, apodBody)
	svc := NewAPODService(up)

	env, err := svc.GetAPOD(context.Background(), APODQuery{Date: "2024-01-01"})
	if err != nil {
		t.Fatalf("GetAPOD() error = %v", err)
	}
	if !env.Success || env.Data == nil {
		t.Fatalf("envelope = %+v, want success with data", env)
	}
	if env.Data.Title != "NGC 1232" || env.Data.HDURL == "" {
		t.Errorf("data = %+v", env.Data)
	}
	if env.Data.Copyright != "" {
		t.Errorf("Copyright = %q, want empty", env.Data.Copyright)
	}

	calls := up.Calls()
	if len(calls) != 1 || calls[0].Params.Get("date") != "2024-01-01" {
		t.Errorf("calls = %+v", calls)
	}
}

func TestAPODService_NoDateSendsNoDateParam(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().respond(pathAPOD, apodBody)
	if _, err := NewAPODService(up).GetAPOD(context.Background(), APODQuery{}); err != nil {
		t.Fatalf("GetAPOD() error = %v", err)
	}
	if _, ok := up.Calls()[0].Params["date"]; ok {
		t.Error("date param should be omitted when no date is given")
	}
}

func TestAPODService_InvalidDate(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	_, err := NewAPODService(up).GetAPOD(context.Background(), APODQuery{Date: "2024-13-01"})

	apiErr, ok := models.AsError(err)
	if !ok || apiErr.Code != models.CodeInvalidDateFormat {
		t.Fatalf("error = %v, want INVALID_DATE_FORMAT", err)
	}
	if len(up.Calls()) != 0 {
		t.Error("upstream should not be called for an invalid date")
	}
}

func TestAPODService_ErrorMapping(t *testing.T) {
	t.Parallel()

	typed := models.NewUpstreamError(http.StatusForbidden, "An invalid api_key was supplied", nil)
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"typed errors pass through", typed, http.StatusForbidden, "An invalid api_key was supplied"},
		{"breaker rejection passes through", models.NewServiceUnavailableError(nil), http.StatusServiceUnavailable, models.MsgExternalServiceUnavailable},
		{"untyped errors become internal", errors.New("boom"), http.StatusInternalServerError, msgAPODError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			up := newFakeUpstream().fail(pathAPOD, tt.err)
			_, err := NewAPODService(up).GetAPOD(context.Background(), APODQuery{})

			apiErr, ok := models.AsError(err)
			if !ok {
				t.Fatalf("error = %v, want *models.Error", err)
			}
			if apiErr.StatusCode != tt.wantStatus || apiErr.Message != tt.wantMsg {
				t.Errorf("got %d %q, want %d %q", apiErr.StatusCode, apiErr.Message, tt.wantStatus, tt.wantMsg)
			}
		})
	}
}
