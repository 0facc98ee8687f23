// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/nasa-explorer/internal/logging"
	"github.com/tomtom215/nasa-explorer/internal/middleware"
	"github.com/tomtom215/nasa-explorer/internal/models"
)

// writeJSON writes v as JSON with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// respondOK writes a successful envelope with status 200.
func respondOK[T any](w http.ResponseWriter, env models.Envelope[T]) {
	writeJSON(w, http.StatusOK, env)
}

// respondError renders err as an error envelope.
//
// A *models.Error keeps its status, code and message. Anything else becomes
// a 500 with a generic message so internal detail never reaches the client.
// The full error chain is attached as "stack" in development only.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, ok := models.AsError(err)
	if !ok {
		apiErr = models.NewInternalError(models.MsgInternalServerError, err)
	}

	event := logging.CtxWarn(r.Context()).Err(err)
	if apiErr.StatusCode >= http.StatusInternalServerError {
		event = logging.CtxErr(r.Context(), err)
	}
	event.
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("kind", apiErr.Kind.String()).
		Str("code", apiErr.Code).
		Msgf("Error %d: %s", apiErr.StatusCode, apiErr.Message)

	stack := ""
	if h.development {
		stack = errorChain(err)
	}
	writeErrorBody(w, r, apiErr, stack)
}

// writeErrorBody writes the error envelope for apiErr without logging.
func writeErrorBody(w http.ResponseWriter, r *http.Request, apiErr *models.Error, stack string) {
	writeJSON(w, apiErr.StatusCode, models.Fail(models.ErrorBody{
		Message:   apiErr.Message,
		Code:      apiErr.Code,
		RequestID: middleware.GetRequestID(r.Context()),
		Stack:     stack,
	}))
}

// errorChain renders each error in err's Unwrap chain on its own line.
func errorChain(err error) string {
	var lines []string
	for e := err; e != nil; e = errors.Unwrap(e) {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n    caused by: ")
}
