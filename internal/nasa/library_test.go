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

const libraryBody = `{"collection":{"version":"1.0","href":"https://images-api.nasa.gov/search?q=apollo","items":[{"href":"https://images-assets.nasa.gov/image/as11/collection.json","data":[{"nasa_id":"as11-40-5874","title":"Apollo 11","media_type":"image","date_created":"1969-07-20T00:00:00Z","keywords":["apollo"]}]}],"metadata":{"total_hits":1}}}`

func TestImageLibraryService_Search(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().respond(pathLibrarySearch, libraryBody)
	q := ImageLibraryQuery{
		Q:         "  apollo 11 ",
		MediaType: "image",
		Page:      intPtr(2),
		PageSize:  intPtr(500),
		YearStart: "1969",
		YearEnd:   "1972",
	}

	env, err := NewImageLibraryService(up).Search(context.Background(), q)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if env.Data.Collection.Metadata.TotalHits != 1 || env.Data.Collection.Items[0].Data[0].NASAID != "as11-40-5874" {
		t.Errorf("collection = %+v", env.Data.Collection)
	}

	p := up.Calls()[0].Params
	want := map[string]string{
		"q":          "apollo 11",
		"media_type": "image",
		"page":       "2",
		"page_size":  "100",
		"year_start": "1969",
		"year_end":   "1972",
	}
	for k, v := range want {
		if p.Get(k) != v {
			t.Errorf("%s = %q, want %q", k, p.Get(k), v)
		}
	}
}

func TestImageLibraryService_Defaults(t *testing.T) {
	t.Parallel()

	up := newFakeUpstream().respond(pathLibrarySearch, `{"collection":{"items":[],"metadata":{"total_hits":0}}}`)
	env, err := NewImageLibraryService(up).Search(context.Background(), ImageLibraryQuery{Q: "nebula"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if env.Data.Collection.Items == nil {
		t.Error("Items should be an empty slice")
	}

	p := up.Calls()[0].Params
	if p.Get("page") != "1" || p.Get("page_size") != "100" {
		t.Errorf("page = %q page_size = %q, want 1/100", p.Get("page"), p.Get("page_size"))
	}
	for _, k := range []string{"media_type", "year_start", "year_end"} {
		if _, ok := p[k]; ok {
			t.Errorf("%s should be omitted", k)
		}
	}
}

func TestImageLibraryService_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   ImageLibraryQuery
		wantMsg string
	}{
		{"missing q", ImageLibraryQuery{}, "Search query is required"},
		{"blank q", ImageLibraryQuery{Q: "   "}, "Search query is required"},
		{"bad media type", ImageLibraryQuery{Q: "mars", MediaType: "gif"}, "media_type must be one of: image, video, audio"},
		{"bad year", ImageLibraryQuery{Q: "mars", YearStart: "69"}, "year_start must be a four-digit year"},
		{"page size zero", ImageLibraryQuery{Q: "mars", PageSize: intPtr(0)}, "Page size must be a positive integer"},
		{"years reversed", ImageLibraryQuery{Q: "mars", YearStart: "2000", YearEnd: "1990"}, msgYearRangeOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			up := newFakeUpstream()
			_, err := NewImageLibraryService(up).Search(context.Background(), tt.query)

			apiErr, ok := models.AsError(err)
			if !ok || apiErr.Kind != models.KindValidation {
				t.Fatalf("error = %v, want validation error", err)
			}
			if apiErr.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", apiErr.Message, tt.wantMsg)
			}
			if len(up.Calls()) != 0 {
				t.Error("upstream should not be called")
			}
		})
	}
}
