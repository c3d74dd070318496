// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/productrec/internal/metrics"
)

// breakerName labels the Redis circuit breaker in logs and metrics.
const breakerName = "redis-cache"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string
	DB       int
	Password string
	TTL      time.Duration

	// Timeout bounds dial, read and write. Default 200ms.
	Timeout time.Duration

	// MaxRetries is passed to go-redis; -1 disables retries.
	MaxRetries int

	// FailureThreshold is the number of consecutive failures that opens
	// the breaker. Default 5.
	FailureThreshold uint32

	// OpenTimeout is how long the breaker stays open before probing. Default 30s.
	OpenTimeout time.Duration
}

// RedisStore is a Store backed by Redis and guarded by a circuit breaker.
type RedisStore struct {
	client *redis.Client
	cb     *gobreaker.CircuitBreaker[[]byte]
	ttl    time.Duration
}

// NewRedisStore creates a store. It does not contact Redis; an unreachable
// server shows up as failed calls and eventually an open breaker.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewRedisStore(cfg RedisConfig, logger zerolog.Logger) *RedisStore {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 200 * time.Millisecond
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 5 * time.Minute
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		Password:     cfg.Password,
		DialTimeout:  cfg.Timeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
		MaxRetries:   cfg.MaxRetries,
	})

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	threshold := cfg.FailureThreshold
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Redis cache circuit breaker state change")
			metrics.RecordCircuitBreakerTransition(name, from.String(), to.String(), stateValue(to))
		},
	})

	return &RedisStore{client: client, cb: cb, ttl: cfg.TTL}
}

// Name implements Store.
func (s *RedisStore) Name() string { return BackendRedis }

// Get implements Store. redis.Nil is a miss and counts as breaker success.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.cb.Execute(func() ([]byte, error) {
		b, err := s.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		if b == nil {
			b = []byte{}
		}
		return b, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	if val == nil {
		return nil, false, nil
	}
	return val, true, nil
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.cb.Execute(func() ([]byte, error) {
		return nil, s.client.Set(ctx, key, value, s.ttl).Err()
	})
	if err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Ping checks connectivity through the breaker.
func (s *RedisStore) Ping(ctx context.Context) error {
	_, err := s.cb.Execute(func() ([]byte, error) {
		return nil, s.client.Ping(ctx).Err()
	})
	return err
}

// State returns the breaker state.
func (s *RedisStore) State() gobreaker.State {
	return s.cb.State()
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// stateValue converts a breaker state to the gauge value.
func stateValue(state gobreaker.State) int {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}

// IsBreakerOpen reports whether err was produced by a rejecting breaker.
func IsBreakerOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
