// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"fmt"
	"net/http"

	"github.com/tomtom215/nasa-explorer/internal/models"
)

// NotFound renders the 404 envelope for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, models.NewNotFoundError(fmt.Sprintf("Route %s not found", r.URL.RequestURI())))
}

// MethodNotAllowed renders the 405 envelope for known paths with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, r, models.NewMethodNotAllowedError(r.Method, r.URL.Path))
}
