// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"net/http"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

// APIInfo describes the service and its endpoints.
type APIInfo struct {
	Name        string                  `json:"name"`
	Version     string                  `json:"version"`
	Description string                  `json:"description"`
	Endpoints   map[string]EndpointInfo `json:"endpoints"`
}

// EndpointInfo documents one endpoint and its query parameters.
type EndpointInfo struct {
	Path        string            `json:"path"`
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Parameters  map[string]string `json:"parameters"`
}

var endpointCatalogue = map[string]EndpointInfo{
	"apod": {
		Path:        "/api/apod",
		Method:      http.MethodGet,
		Description: "Get Astronomy Picture of the Day",
		Parameters: map[string]string{
			"date": "Optional date in YYYY-MM-DD format",
		},
	},
	"neo": {
		Path:        "/api/neo",
		Method:      http.MethodGet,
		Description: "Get Near Earth Objects data",
		Parameters: map[string]string{
			"start_date": "Required start date in YYYY-MM-DD format",
			"end_date":   "Required end date in YYYY-MM-DD format (max 7 days range)",
		},
	},
	"marsRover": {
		Path:        "/api/mars-rover/{rover}/photos",
		Method:      http.MethodGet,
		Description: "Get Mars Rover photos",
		Parameters: map[string]string{
			"rover":      "Required rover name (curiosity, opportunity, spirit)",
			"sol":        "Optional Martian sol (day)",
			"earth_date": "Optional Earth date in YYYY-MM-DD format",
			"camera":     "Optional camera name (FHAZ, RHAZ, MAST, CHEMCAM, MAHLI, MARDI, NAVCAM)",
			"page":       "Optional page number for pagination",
		},
	},
	"epic": {
		Path:        "/api/epic",
		Method:      http.MethodGet,
		Description: "Get EPIC Earth images",
		Parameters: map[string]string{
			"date": "Optional date in YYYY-MM-DD format",
		},
	},
	"imageLibrary": {
		Path:        "/api/image-library/search",
		Method:      http.MethodGet,
		Description: "Search NASA Image and Video Library",
		Parameters: map[string]string{
			"q":          "Required search query",
			"media_type": "Optional media type (image, video, audio)",
			"page":       "Optional page number",
			"page_size":  "Optional page size (max 100)",
			"year_start": "Optional start year",
			"year_end":   "Optional end year",
		},
	},
}

// Info handles GET /api.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	respondOK(w, models.OK(APIInfo{
		Name:        "NASA Data Explorer API",
		Version:     h.version,
		Description: "Proxy API for NASA Open Data",
		Endpoints:   endpointCatalogue,
	}))
}
