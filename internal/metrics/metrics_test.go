// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/productrec/internal/recommend"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/products", "200"))
	RecordAPIRequest("GET", "/api/products", "200", 5*time.Millisecond)
	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/products", "200"))

	if after-before != 1 {
		t.Errorf("api_requests_total increased by %v, want 1", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("api_active_requests = %v, want %v", got, before+1)
	}
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	tests := []struct {
		outcome string
		results int
	}{
		{OutcomeOK, 5},
		{OutcomeUnknownUser, 0},
		{OutcomeCacheHit, 3},
		{OutcomeError, 0},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			before := testutil.ToFloat64(RecommendationQueries.WithLabelValues(tt.outcome))
			RecordRecommendation(tt.outcome, tt.results, time.Millisecond)
			after := testutil.ToFloat64(RecommendationQueries.WithLabelValues(tt.outcome))
			if after-before != 1 {
				t.Errorf("recommendation_queries_total{outcome=%q} increased by %v, want 1", tt.outcome, after-before)
			}
		})
	}
}

func TestRecordSnapshot(t *testing.T) {
	built := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	RecordSnapshot(recommend.Stats{
		Version:            7,
		BuiltAt:            built,
		Products:           3,
		Interactions:       4,
		Users:              2,
		InteractedProducts: 3,
		ContentBuild:       time.Millisecond,
		InteractionBuild:   2 * time.Millisecond,
	})

	if got := testutil.ToFloat64(EngineSnapshotVersion); got != 7 {
		t.Errorf("engine_snapshot_version = %v, want 7", got)
	}
	if got := testutil.ToFloat64(EngineSnapshotBuilt); got != float64(built.Unix()) {
		t.Errorf("engine_snapshot_built_timestamp = %v, want %v", got, built.Unix())
	}
	if got := testutil.ToFloat64(EngineDimension.WithLabelValues("users")); got != 2 {
		t.Errorf("engine_dimension{users} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(EngineDimension.WithLabelValues("products")); got != 3 {
		t.Errorf("engine_dimension{products} = %v, want 3", got)
	}
}

func TestRecordReload(t *testing.T) {
	okBefore := testutil.ToFloat64(DatasetReloads.WithLabelValues("success"))
	failBefore := testutil.ToFloat64(DatasetReloads.WithLabelValues("failure"))

	RecordReload(nil)
	RecordReload(errors.New("missing file"))

	if got := testutil.ToFloat64(DatasetReloads.WithLabelValues("success")) - okBefore; got != 1 {
		t.Errorf("success reloads increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(DatasetReloads.WithLabelValues("failure")) - failBefore; got != 1 {
		t.Errorf("failure reloads increased by %v, want 1", got)
	}
}

func TestRecordCache(t *testing.T) {
	hitBefore := testutil.ToFloat64(CacheLookups.WithLabelValues("memory", "hit"))
	missBefore := testutil.ToFloat64(CacheLookups.WithLabelValues("memory", "miss"))
	errBefore := testutil.ToFloat64(CacheErrors.WithLabelValues("redis", "get"))

	RecordCacheLookup("memory", true)
	RecordCacheLookup("memory", false)
	RecordCacheLookup("memory", false)
	RecordCacheError("redis", "get")

	if got := testutil.ToFloat64(CacheLookups.WithLabelValues("memory", "hit")) - hitBefore; got != 1 {
		t.Errorf("hits increased by %v, want 1", got)
	}
	if got := testutil.ToFloat64(CacheLookups.WithLabelValues("memory", "miss")) - missBefore; got != 2 {
		t.Errorf("misses increased by %v, want 2", got)
	}
	if got := testutil.ToFloat64(CacheErrors.WithLabelValues("redis", "get")) - errBefore; got != 1 {
		t.Errorf("errors increased by %v, want 1", got)
	}
}

func TestRecordCircuitBreakerTransition(t *testing.T) {
	RecordCircuitBreakerTransition("redis-cache", "closed", "open", 2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("redis-cache")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
	RecordCircuitBreakerTransition("redis-cache", "open", "half-open", 1)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("redis-cache")); got != 1 {
		t.Errorf("circuit_breaker_state = %v, want 1", got)
	}
}
