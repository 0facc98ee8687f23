// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package models

// Envelope is the uniform wrapper returned for every operation.
//
// Exactly one of Data and Error is set: Success is true if and only if Data
// is present and Error is absent.
//
//	{"success": true, "data": {...}}
//	{"success": false, "error": {"message": "Date range cannot exceed 7 days", "code": "DATE_RANGE_EXCEEDED"}}
type Envelope[T any] struct {
	Success bool       `json:"success"`
	Data    *T         `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

// ErrorBody is the error half of an Envelope.
type ErrorBody struct {
	Message   string `json:"message"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`

	// Stack carries the cause chain and is only populated in development.
	Stack string `json:"stack,omitempty"`
}

// OK wraps data in a successful envelope.
func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

// Fail builds an error envelope.
func Fail(body ErrorBody) Envelope[struct{}] {
	return Envelope[struct{}]{Success: false, Error: &body}
}
