// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package validation

import (
	"testing"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"2024-01-01", true},
		{"2024-02-29", true},
		{"1995-06-16", true},
		{"2024-02-30", false},
		{"2023-02-29", false},
		{"2024-13-01", false},
		{"2024-00-10", false},
		{"2024-1-01", false},
		{"24-01-01", false},
		{"2024/01/01", false},
		{"2024-01-01T00:00:00Z", false},
		{" 2024-01-01", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidDate(tt.in); got != tt.want {
			t.Errorf("IsValidDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDaysBetween(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want int
	}{
		{"2020-01-01", "2020-01-07", 6},
		{"2020-01-07", "2020-01-01", 6},
		{"2020-01-01", "2020-01-01", 0},
		{"2020-01-01", "2020-01-20", 19},
		{"2020-02-28", "2020-03-01", 2},
		{"2019-12-31", "2020-01-01", 1},
	}

	for _, tt := range tests {
		got, err := DaysBetween(tt.a, tt.b)
		if err != nil {
			t.Errorf("DaysBetween(%s, %s) error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DaysBetween(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if _, err := DaysBetween("2020-01-01", "2020-02-31"); !models.IsKind(err, models.KindValidation) {
		t.Errorf("invalid date should yield a validation error, got %v", err)
	}
}

func TestCheckDateRange(t *testing.T) {
	t.Parallel()

	if err := CheckDateRange("2020-01-01", "2020-01-07"); err != nil {
		t.Errorf("6-day range should pass: %v", err)
	}
	if err := CheckDateRange("2020-01-01", "2020-01-08"); err != nil {
		t.Errorf("7-day range should pass: %v", err)
	}

	err := CheckDateRange("2020-01-01", "2020-01-20")
	e, ok := models.AsError(err)
	if !ok {
		t.Fatalf("19-day range should fail with a typed error, got %v", err)
	}
	if e.Code != models.CodeDateRangeExceeded || e.Message != models.MsgDateRangeExceeded {
		t.Errorf("got code=%q message=%q", e.Code, e.Message)
	}
}
