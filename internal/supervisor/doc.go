// NASA Data Explorer - Resilient proxy over NASA Open APIs
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nasa-explorer

/*
Package supervisor runs the long-lived parts of the NASA Data Explorer under a
suture v4 supervisor tree.

The tree has two layers:

	RootSupervisor ("nasa-explorer")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── BackgroundSupervisor ("background-layer")
	    └── UptimeService

A crashed service is restarted with suture's backoff. A failure in the
background layer never restarts the HTTP server.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{})
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddBackgroundService(services.NewUptimeService(start, 15*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Supervisor events are logged through sutureslog, which writes to the zerolog
logger via logging.NewSlogLogger.
*/
package supervisor
