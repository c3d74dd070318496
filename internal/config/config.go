// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/productrec/internal/recommend"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Data      DataConfig       `koanf:"data"`
	Recommend recommend.Config `koanf:"recommend"`
	Cache     CacheConfig      `koanf:"cache"`
	Security  SecurityConfig   `koanf:"security"`
	Logging   LoggingConfig    `koanf:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DataConfig locates the source tables.
type DataConfig struct {
	ProductsPath     string `koanf:"products_path" validate:"required"`
	InteractionsPath string `koanf:"interactions_path" validate:"required"`

	// ReloadInterval rebuilds the engine from disk periodically.
	// Zero disables reloading.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// Cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// CacheConfig controls the recommendation result cache.
type CacheConfig struct {
	Enabled       bool          `koanf:"enabled"`
	Backend       string        `koanf:"backend" validate:"oneof=memory redis"`
	TTL           time.Duration `koanf:"ttl"`
	MaxEntries    int           `koanf:"max_entries" validate:"min=1"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisDB       int           `koanf:"redis_db" validate:"min=0,max=15"`
	RedisPassword string        `koanf:"redis_password"`
}

// SecurityConfig holds browser-facing HTTP protections.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is json or console.
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}
