// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package services adapts NASA Data Explorer components to suture's
context-aware Serve pattern.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

HTTPServerService runs an *http.Server. It turns ListenAndServe into Serve
and drains connections with Shutdown when the context is canceled.

UptimeService refreshes the app_uptime_seconds gauge on a ticker so the
value stays current between /health requests.
*/
package services
