// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

// Package models defines the types shared between the NASA domain services
// and the HTTP layer: the response envelope, the typed error taxonomy and
// the reshaped NASA payloads returned to callers.
package models
