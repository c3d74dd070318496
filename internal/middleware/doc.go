// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package middleware provides HTTP middleware components for the API router.

Key Components:

  - RequestID: request ID assignment and a request-scoped zerolog logger
  - AccessLog: one structured line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation

All components use the func(http.Handler) http.Handler shape and plug
straight into chi:

	r := chi.NewRouter()
	r.Use(middleware.RequestID(logging.WithComponent("api")))
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

Metrics and access logs are labelled with the chi route pattern
(/api/users/{userID}), not the raw path.
*/
package middleware
