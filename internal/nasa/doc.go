// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package nasa implements the domain services behind the public API.

Each service validates its query, calls exactly one NASA upstream through an
Upstream (normally an *upstream.Client with its own circuit breaker), and
reshapes the response into the types in internal/models.

Services:
  - APODService: Astronomy Picture of the Day
  - NEOService: Near Earth Object feed, flattened by date (max 7 days)
  - MarsRoverService: rover photos, falling back to the manifest max_date
  - EPICService: DSCOVR EPIC natural-color images
  - ImageLibraryService: Image and Video Library search (keyless upstream)

Error contract:

Typed *models.Error values (validation, upstream, service unavailable) are
returned unchanged. Anything else is wrapped once into an InternalError
carrying the service's fixed message, with the original error kept as the
cause for logs.
*/
package nasa
