// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package config provides centralized configuration management for Productrec.

# Configuration Sources

Configuration is layered with Koanf v2, later layers overriding earlier ones:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, config.yaml, config.yml or
    /etc/productrec/config.yaml
 3. Environment variables

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, HTTP_SHUTDOWN_TIMEOUT

Data:
  - PRODUCTS_PATH: Product catalog CSV (default: data/products.csv)
  - INTERACTIONS_PATH: Interaction log CSV (default: data/user_interactions.csv)
  - RELOAD_INTERVAL: Rebuild period, 0 disables reloading (default: 0)

Recommendation engine:
  - RECOMMEND_RESULT_LIMIT, RECOMMEND_SIMILAR_TOP_N, RECOMMEND_FALLBACK_SIZE

Cache:
  - CACHE_ENABLED (default: true)
  - CACHE_BACKEND: memory or redis (default: memory)
  - CACHE_TTL (default: 5m)
  - CACHE_MAX_ENTRIES (default: 10000)
  - REDIS_ADDR, REDIS_DB, REDIS_PASSWORD

Security:
  - CORS_ORIGINS: Comma-separated list (default: http://localhost:5173)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
