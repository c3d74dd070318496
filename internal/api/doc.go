// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package api exposes the recommendation engine over HTTP using the Chi router.

# Endpoints

	GET /api/products                         product catalog
	GET /api/products/{productID}/similar     content-similar products (?limit=N)
	GET /api/users/ids                        distinct user ids
	GET /api/users/{userID}                   one user's interaction rows
	GET /api/recommendations/{userID}         hybrid recommendations
	GET /api/status                           current snapshot statistics
	GET /health/live                          liveness probe
	GET /health/ready                         readiness probe
	GET /metrics                              Prometheus exposition

Successful responses are the bare payload. Errors share one envelope:

	{"status": "error", "error": {"code": "USER_NOT_FOUND", "message": "..."}}

# Middleware

Applied to every route, outermost first:

  - middleware.RequestID: X-Request-ID plus a request-scoped logger
  - chi RealIP and Recoverer
  - middleware.AccessLog
  - go-chi/cors with origins from configuration
  - middleware.PrometheusMetrics

The /api group is also rate limited per client IP with go-chi/httprate.

# Snapshots

Handlers read the current dataset.Snapshot once per request. A reload that
swaps the snapshot mid-request does not affect that request. Until the first
snapshot is installed, data endpoints answer 503.
*/
package api
