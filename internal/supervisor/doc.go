// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package supervisor runs the long-lived parts of productrec under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("productrec")
	├── DataSupervisor ("data-layer")
	│   └── ReloadService (when data.reload_interval > 0)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services restart with suture's backoff. Supervisor events are logged
through sutureslog, backed by the zerolog slog bridge in internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	tree.AddDataService(services.NewReloadService(holder, reloadCfg, logger))
	err = tree.Serve(ctx)

The service implementations live in the services subpackage.
*/
package supervisor
