// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package main is the entry point for the productrec server.

productrec loads a product catalog and a table of user interactions, builds
a content-based and a collaborative model from them, and serves blended
recommendations over HTTP.

# Startup

 1. Configuration: Koanf v2 (defaults, config file, environment)
 2. Logging: zerolog with JSON or console output
 3. Dataset: both CSV files are read and the engine is built; any error is fatal
 4. Cache: in-memory LRU or Redis behind a circuit breaker
 5. Supervisor tree: HTTP server and optional reload service

# Configuration

	HTTP_HOST=0.0.0.0
	HTTP_PORT=8000
	PRODUCTS_PATH=data/products.csv
	INTERACTIONS_PATH=data/user_interactions.csv
	RELOAD_INTERVAL=0            # e.g. 5m; 0 disables reloading
	CACHE_ENABLED=true
	CACHE_BACKEND=memory         # memory or redis
	REDIS_ADDR=localhost:6379
	CORS_ORIGINS=http://localhost:5173
	LOG_LEVEL=info
	LOG_FORMAT=json

A YAML file at CONFIG_PATH (or ./config.yaml) may set the same keys; the
environment wins.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server stops
accepting connections and waits up to server.shutdown_timeout for
in-flight requests.
*/
package main
