// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package api exposes the NASA services over HTTP using the chi router.

Routes:

	GET /health                          process health and circuit breaker snapshots
	GET /health/live                     liveness probe
	GET /health/ready                    readiness probe (503 when every breaker is OPEN)
	GET /metrics                         Prometheus exposition
	GET /api                             API info document
	GET /api/apod                        Astronomy Picture of the Day
	GET /api/neo                         Near Earth Objects (start_date, end_date)
	GET /api/mars-rover/{rover}/photos   Mars rover photos
	GET /api/epic                        EPIC Earth imagery
	GET /api/image-library/search        Image and Video Library search

Response format:

Every /api response is a models.Envelope:

	{"success": true, "data": {...}}
	{"success": false, "error": {"message": "...", "code": "...", "request_id": "..."}}

Errors are rendered by Handler.respondError. A *models.Error keeps its status
and message; any other error becomes a 500 with the message hidden. In the
development environment the error body also carries the cause chain under
"stack".

Middleware stack (outermost first): request ID, real IP, access log, panic
recovery, CORS, security headers, Prometheus metrics, gzip compression. The
/api subtree adds per-IP rate limiting.
*/
package api
