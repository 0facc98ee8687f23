// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/nasa-explorer/internal/models"
	"github.com/tomtom215/nasa-explorer/internal/nasa"
)

// Messages for query integers that are not numbers at all. Parsed values
// that are out of range are reported by the services.
const (
	msgSolNotInteger      = "Sol must be a positive integer"
	msgPageNotInteger     = "Page must be a positive integer"
	msgPageSizeNotInteger = "Page size must be a positive integer"
)

// APOD handles GET /api/apod?date=YYYY-MM-DD.
func (h *Handler) APOD(w http.ResponseWriter, r *http.Request) {
	env, err := h.services.APOD.GetAPOD(r.Context(), nasa.APODQuery{
		Date: queryString(r, "date"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, env)
}

// NearEarthObjects handles GET /api/neo?start_date=...&end_date=...
func (h *Handler) NearEarthObjects(w http.ResponseWriter, r *http.Request) {
	env, err := h.services.NEO.GetNearEarthObjects(r.Context(), nasa.NEOQuery{
		StartDate: queryString(r, "start_date"),
		EndDate:   queryString(r, "end_date"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, env)
}

// MarsRoverPhotos handles GET /api/mars-rover/{rover}/photos.
func (h *Handler) MarsRoverPhotos(w http.ResponseWriter, r *http.Request) {
	sol, err := queryInt(r, "sol", msgSolNotInteger)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	page, err := queryInt(r, "page", msgPageNotInteger)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	env, err := h.services.MarsRover.GetPhotos(r.Context(), nasa.MarsRoverQuery{
		Rover:     chi.URLParam(r, "rover"),
		Sol:       sol,
		EarthDate: queryString(r, "earth_date"),
		Camera:    queryString(r, "camera"),
		Page:      page,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, env)
}

// EPIC handles GET /api/epic?date=YYYY-MM-DD.
func (h *Handler) EPIC(w http.ResponseWriter, r *http.Request) {
	env, err := h.services.EPIC.GetImages(r.Context(), nasa.EPICQuery{
		Date: queryString(r, "date"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, env)
}

// ImageLibrarySearch handles GET /api/image-library/search.
func (h *Handler) ImageLibrarySearch(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page", msgPageNotInteger)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	pageSize, err := queryInt(r, "page_size", msgPageSizeNotInteger)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	env, err := h.services.ImageLibrary.Search(r.Context(), nasa.ImageLibraryQuery{
		Q:         r.URL.Query().Get("q"),
		MediaType: queryString(r, "media_type"),
		Page:      page,
		PageSize:  pageSize,
		YearStart: queryString(r, "year_start"),
		YearEnd:   queryString(r, "year_end"),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	respondOK(w, env)
}

// queryString returns the trimmed query parameter.
func queryString(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// queryInt parses an optional integer parameter. Absent or empty values
// return nil.
func queryInt(r *http.Request, name, invalidMsg string) (*int, error) {
	raw := queryString(r, name)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, models.NewValidationError(models.CodeValidation, invalidMsg)
	}
	return &n, nil
}
