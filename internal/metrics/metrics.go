// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/productrec/internal/recommend"
)

// Recommendation query outcomes.
const (
	OutcomeOK          = "ok"
	OutcomeUnknownUser = "unknown_user"
	OutcomeCacheHit    = "cache_hit"
	OutcomeError       = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_queries_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_query_duration_seconds",
			Help:    "Time to compute a recommendation list, cache hits included",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of records returned per recommendation query",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10, 20},
		},
	)

	// Engine Snapshot Metrics
	EngineBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "engine_build_duration_seconds",
			Help:    "Duration of engine model builds by stage",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"stage"},
	)

	EngineDimension = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "engine_dimension",
			Help: "Size of the current engine snapshot by dimension",
		},
		[]string{"dimension"},
	)

	EngineSnapshotVersion = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_snapshot_version",
			Help: "Version of the engine snapshot currently serving requests",
		},
	)

	EngineSnapshotBuilt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "engine_snapshot_built_timestamp",
			Help: "Unix timestamp at which the current snapshot was built",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reload attempts by status",
		},
		[]string{"status"},
	)

	// Cache Metrics
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_lookups_total",
			Help: "Recommendation cache lookups by backend and result",
		},
		[]string{"backend", "result"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_cache_errors_total",
			Help: "Recommendation cache backend errors",
		},
		[]string{"backend", "operation"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a rejected request.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records one recommendation query.
func RecordRecommendation(outcome string, results int, duration time.Duration) {
	RecommendationQueries.WithLabelValues(outcome).Inc()
	RecommendationDuration.Observe(duration.Seconds())
	if outcome != OutcomeError {
		RecommendationResults.Observe(float64(results))
	}
}

// RecordSnapshot publishes the statistics of a newly swapped-in engine.
func RecordSnapshot(s recommend.Stats) {
	EngineBuildDuration.WithLabelValues("content").Observe(s.ContentBuild.Seconds())
	EngineBuildDuration.WithLabelValues("interactions").Observe(s.InteractionBuild.Seconds())

	EngineDimension.WithLabelValues("products").Set(float64(s.Products))
	EngineDimension.WithLabelValues("interactions").Set(float64(s.Interactions))
	EngineDimension.WithLabelValues("users").Set(float64(s.Users))
	EngineDimension.WithLabelValues("interacted_products").Set(float64(s.InteractedProducts))

	EngineSnapshotVersion.Set(float64(s.Version))
	EngineSnapshotBuilt.Set(float64(s.BuiltAt.Unix()))
}

// RecordReload counts a reload attempt.
func RecordReload(err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	DatasetReloads.WithLabelValues(status).Inc()
}

// RecordCacheLookup counts a cache hit or miss.
func RecordCacheLookup(backend string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(backend, result).Inc()
}

// RecordCacheError counts a failed cache operation.
func RecordCacheError(backend, operation string) {
	CacheErrors.WithLabelValues(backend, operation).Inc()
}

// RecordCircuitBreakerTransition updates the state gauge and transition counter.
// state follows gobreaker's numbering: 0 closed, 1 half-open, 2 open.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}
