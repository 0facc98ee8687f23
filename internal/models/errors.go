// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies failures for status mapping and propagation.
type ErrorKind int

const (
	// KindInternal is any unexpected fault, wrapped once at a service boundary.
	KindInternal ErrorKind = iota
	// KindValidation is a client input fault. Never retried.
	KindValidation
	// KindUpstream is a non-2xx response, timeout or network failure from NASA.
	KindUpstream
	// KindServiceUnavailable is a call refused by an open circuit breaker.
	KindServiceUnavailable
	// KindNotFound is an unknown route.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUpstream:
		return "upstream"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error codes carried in ErrorBody.Code.
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeInvalidDateFormat  = "INVALID_DATE_FORMAT"
	CodeDateRangeExceeded  = "DATE_RANGE_EXCEEDED"
	CodeRequiredParameters = "REQUIRED_PARAMETERS"
	CodeUpstream           = "UPSTREAM_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"
)

// Caller-facing messages.
const (
	MsgInvalidDateFormat          = "Invalid date format. Use YYYY-MM-DD"
	MsgDateRangeExceeded          = "Date range cannot exceed 7 days"
	MsgRequiredDates              = "start_date and end_date parameters are required"
	MsgNASAAPIError               = "Failed to fetch data from NASA API"
	MsgExternalServiceUnavailable = "External service unavailable"
	MsgInternalServerError        = "Internal Server Error"
	MsgTooManyRequests            = "Too many requests, please try again later"
)

// Error is the typed error returned by the validation, upstream and
// domain service layers. The HTTP layer renders Message and StatusCode;
// Err is kept for logs and the development error posture.
type Error struct {
	Kind       ErrorKind
	Code       string
	Message    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError returns a 400 error with the given code and message.
func NewValidationError(code, message string) *Error {
	if code == "" {
		code = CodeValidation
	}
	return &Error{Kind: KindValidation, Code: code, Message: message, StatusCode: http.StatusBadRequest}
}

// NewUpstreamError returns an upstream failure. A status outside 400-599
// is replaced with 500.
func NewUpstreamError(status int, message string, cause error) *Error {
	if status < 400 || status > 599 {
		status = http.StatusInternalServerError
	}
	if message == "" {
		message = MsgNASAAPIError
	}
	return &Error{Kind: KindUpstream, Code: CodeUpstream, Message: message, StatusCode: status, Err: cause}
}

// NewServiceUnavailableError returns the fixed 503 raised when a breaker
// refuses a call.
func NewServiceUnavailableError(cause error) *Error {
	return &Error{
		Kind:       KindServiceUnavailable,
		Code:       CodeServiceUnavailable,
		Message:    MsgExternalServiceUnavailable,
		StatusCode: http.StatusServiceUnavailable,
		Err:        cause,
	}
}

// NewInternalError returns a 500 with a fixed, caller-safe message.
func NewInternalError(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: CodeInternal, Message: message, StatusCode: http.StatusInternalServerError, Err: cause}
}

// NewNotFoundError returns a 404.
func NewNotFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Code: CodeNotFound, Message: message, StatusCode: http.StatusNotFound}
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsKind reports whether err carries a *Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	e, ok := AsError(err)
	return ok && e.Kind == kind
}

// NewMethodNotAllowedError returns a 405 raised by the router when a path
// exists but not for the request method.
func NewMethodNotAllowedError(method, path string) *Error {
	return &Error{
		Kind:       KindNotFound,
		Code:       CodeMethodNotAllowed,
		Message:    "Method " + method + " not allowed on " + path,
		StatusCode: http.StatusMethodNotAllowed,
	}
}

// NewTooManyRequestsError returns the 429 written by inbound rate limiting.
func NewTooManyRequestsError() *Error {
	return &Error{
		Kind:       KindValidation,
		Code:       CodeTooManyRequests,
		Message:    MsgTooManyRequests,
		StatusCode: http.StatusTooManyRequests,
	}
}
