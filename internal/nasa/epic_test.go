// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package nasa

import (
	"context"
	"testing"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

const epicBody = `[{
	"identifier": "20240101003633",
	"caption": "This image was taken by NASA's EPIC camera",
	"image": "epic_1b_20240101003633",
	"version": "03",
	"centroid_coordinates": {"lat": -22.5, "lon": 165.1},
	"dscovr_j2000_position": {"x": 1, "y": 2, "z": 3},
	"attitude_quaternions": {"q0": 0.1, "q1": 0.2, "q2": 0.3, "q3": 0.4},
	"date": "2024-01-01 00:31:45"
}]`

func TestEPICService_GetImages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    EPICQuery
		wantPath string
	}{
		{"latest", EPICQuery{}, "/EPIC/api/natural"},
		{"by date", EPICQuery{Date: "2024-01-01"}, "/EPIC/api/natural/date/2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			up := newFakeUpstream().respond(tt.wantPath, epicBody)
			env, err := NewEPICService(up).GetImages(context.Background(), tt.query)
			if err != nil {
				t.Fatalf("GetImages() error = %v", err)
			}

			images := *env.Data
			if len(images) != 1 {
				t.Fatalf("images = %d, want 1", len(images))
			}
			img := images[0]
			if img.Identifier != "20240101003633" || img.DSCOVRPosition.Z != 3 || img.AttitudeQuaternions.Q3 != 0.4 {
				t.Errorf("image = %+v", img)
			}
			if img.Coords.CentroidCoordinates != img.CentroidCoordinates {
				t.Errorf("coords.centroid_coordinates = %+v, want %+v", img.Coords.CentroidCoordinates, img.CentroidCoordinates)
			}
			if img.Coords.CentroidCoordinates.Lat != -22.5 {
				t.Errorf("lat = %v", img.Coords.CentroidCoordinates.Lat)
			}
		})
	}
}

func TestEPICService_EmptyDay(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().respond("/EPIC/api/natural/date/2015-06-01", `[]`)
	env, err := NewEPICService(up).GetImages(context.Background(), EPICQuery{Date: "2015-06-01"})
	if err != nil {
		t.Fatalf("GetImages() error = %v", err)
	}
	if env.Data == nil || *env.Data == nil || len(*env.Data) != 0 {
		t.Errorf("data = %#v, want empty slice", env.Data)
	}
}

func TestEPICService_InvalidDate(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream()
	_, err := NewEPICService(up).GetImages(context.Background(), EPICQuery{Date: "01-01-2024"})
	if !models.IsKind(err, models.KindValidation) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if len(up.Calls()) != 0 {
		t.Error("upstream should not be called")
	}
}
