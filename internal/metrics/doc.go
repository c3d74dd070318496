// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered on the default registry with promauto and exposed
at /metrics by the API router:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code}
  - api_request_duration_seconds{method, endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations:
  - recommendation_queries_total{outcome}: ok, unknown_user, cache_hit, error
  - recommendation_query_duration_seconds
  - recommendation_results: records returned per query

Engine snapshot:
  - engine_build_duration_seconds{stage}: content, interactions
  - engine_dimension{dimension}: products, interactions, users, interacted_products
  - engine_snapshot_version
  - engine_snapshot_built_timestamp
  - dataset_reloads_total{status}: success, failure

Cache:
  - recommendation_cache_lookups_total{backend, result}: hit, miss
  - recommendation_cache_errors_total{backend, operation}
  - circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open
  - circuit_breaker_transitions_total{name, from, to}

endpoint labels are chi route patterns (/api/recommendations/{userID}),
never raw paths, to keep label cardinality bounded.
*/
package metrics
