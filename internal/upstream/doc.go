// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package upstream wraps outbound calls to the NASA HTTP APIs.

Each Client owns one base URL, one circuit breaker and an optional outbound
rate limiter. Every call flows through the same sequence:

 1. wait on the limiter (when RateLimit > 0)
 2. ask the breaker for admission; a refusal returns a 503 without dialing
 3. GET BaseURL+path with the API key merged under the per-call params
 4. decode a 2xx body into the caller's value, or build an UpstreamError
    from the response body

Errors returned by Get are always *models.Error values so the HTTP layer can
map them straight to a status code.

Example:

	apod := upstream.New(upstream.Config{
	    Name:    "apod",
	    BaseURL: "https://api.nasa.gov",
	    APIKey:  cfg.NASA.APIKey,
	    Breaker: breaker.Settings{FailureThreshold: 5, SuccessThreshold: 2, Cooldown: 30 * time.Second},
	})

	var out models.APOD
	err := apod.Get(ctx, "/planetary/apod", url.Values{"date": {"2024-01-01"}}, &out)
*/
package upstream
