// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package cache

import "context"

// Backend names, also used as metric labels.
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Store is a byte-oriented key/value cache with backend-defined expiry.
type Store interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key with the backend's TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Name identifies the backend.
	Name() string

	// Close releases backend resources.
	Close() error
}

// Verify interface implementations at compile time
var (
	_ Store = (*LRU)(nil)
	_ Store = (*RedisStore)(nil)
)
