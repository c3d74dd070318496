// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

/*
Package cache stores computed recommendation lists so repeated queries for
the same user skip the merge pipeline.

# Backends

Two Store implementations exist:

  - LRU: in-process, size bounded, TTL expiring. The default.
  - RedisStore: shared across replicas. Every call passes through a
    circuit breaker (sony/gobreaker) so an unhealthy Redis degrades to
    cache misses instead of adding latency to each request.

# Keys

RecommendationCache keys entries by snapshot scope and user id:

	productrec:rec:{scope}:u{user}

The scope is derived from a digest of both data tables and the engine
settings (dataset.Snapshot.CacheScope). Replicas and restarts serving the
same data share entries. Changed data gets a new scope, so stale lists
are never served and simply age out.

# Failure Semantics

Cache failures never fail a request. Errors are logged through the
request logger and counted in recommendation_cache_errors_total.
*/
package cache
