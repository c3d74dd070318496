// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package cache

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/productrec/internal/config"
	"github.com/tomtom215/productrec/internal/logging"
	"github.com/tomtom215/productrec/internal/metrics"
	"github.com/tomtom215/productrec/internal/recommend"
)

// RecommendationCache stores final recommendation lists keyed by snapshot
// cache scope and user id. A nil *RecommendationCache is valid and caches nothing.
type RecommendationCache struct {
	store Store
}

// NewRecommendationCache wraps store.
func NewRecommendationCache(store Store) *RecommendationCache {
	return &RecommendationCache{store: store}
}

// New builds the cache described by cfg, or returns nil when caching is disabled.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func New(cfg config.CacheConfig, logger zerolog.Logger) *RecommendationCache {
	if !cfg.Enabled {
		logger.Info().Msg("Recommendation cache disabled")
		return nil
	}

	var store Store
	switch cfg.Backend {
	case config.CacheBackendRedis:
		store = NewRedisStore(RedisConfig{
			Addr:     cfg.RedisAddr,
			DB:       cfg.RedisDB,
			Password: cfg.RedisPassword,
			TTL:      cfg.TTL,
		}, logger)
	default:
		store = NewLRU(cfg.MaxEntries, cfg.TTL)
	}

	logger.Info().
		Str("backend", store.Name()).
		Dur("ttl", cfg.TTL).
		Msg("Recommendation cache enabled")
	return NewRecommendationCache(store)
}

// Key returns the cache key for a user under a snapshot scope. The scope
// must identify the data and settings behind the results, not the process
// that computed them, because a shared store outlives restarts.
func Key(scope string, userID int) string {
	return fmt.Sprintf("productrec:rec:%s:u%d", scope, userID)
}

// Get returns the cached list, or false on a miss. Failures are logged,
// counted and reported as misses.
func (c *RecommendationCache) Get(ctx context.Context, scope string, userID int) ([]recommend.Recommendation, bool) {
	if c == nil {
		return nil, false
	}
	backend := c.store.Name()

	data, ok, err := c.store.Get(ctx, Key(scope, userID))
	if err != nil {
		metrics.RecordCacheError(backend, "get")
		logging.Ctx(ctx).Warn().Err(err).Str("backend", backend).Msg("Recommendation cache read failed")
		return nil, false
	}
	if !ok {
		metrics.RecordCacheLookup(backend, false)
		return nil, false
	}

	var recs []recommend.Recommendation
	if err := json.Unmarshal(data, &recs); err != nil {
		metrics.RecordCacheError(backend, "decode")
		logging.Ctx(ctx).Warn().Err(err).Str("backend", backend).Msg("Discarding undecodable cache entry")
		return nil, false
	}
	if recs == nil {
		recs = []recommend.Recommendation{}
	}

	metrics.RecordCacheLookup(backend, true)
	return recs, true
}

// Set stores recs. Failures are logged and counted.
func (c *RecommendationCache) Set(ctx context.Context, scope string, userID int, recs []recommend.Recommendation) {
	if c == nil {
		return
	}
	backend := c.store.Name()

	data, err := json.Marshal(recs)
	if err != nil {
		metrics.RecordCacheError(backend, "encode")
		logging.Ctx(ctx).Warn().Err(err).Msg("Failed to encode recommendations for cache")
		return
	}
	if err := c.store.Set(ctx, Key(scope, userID), data); err != nil {
		metrics.RecordCacheError(backend, "set")
		logging.Ctx(ctx).Warn().Err(err).Str("backend", backend).Msg("Recommendation cache write failed")
	}
}

// Backend names the underlying store, or "none" for a nil cache.
func (c *RecommendationCache) Backend() string {
	if c == nil {
		return "none"
	}
	return c.store.Name()
}

// Close releases the underlying store.
func (c *RecommendationCache) Close() error {
	if c == nil {
		return nil
	}
	return c.store.Close()
}
