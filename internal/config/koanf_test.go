// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("Server.Port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "0.0.0.0:8000" {
		t.Errorf("Server.Addr() = %q, want 0.0.0.0:8000", cfg.Server.Addr())
	}
	if cfg.Data.ProductsPath != "data/products.csv" {
		t.Errorf("Data.ProductsPath = %q", cfg.Data.ProductsPath)
	}
	if cfg.Data.InteractionsPath != "data/user_interactions.csv" {
		t.Errorf("Data.InteractionsPath = %q", cfg.Data.InteractionsPath)
	}
	if cfg.Data.ReloadInterval != 0 {
		t.Errorf("Data.ReloadInterval = %v, want 0", cfg.Data.ReloadInterval)
	}
	if cfg.Recommend.ResultLimit != 5 || cfg.Recommend.SimilarTopN != 5 || cfg.Recommend.FallbackSize != 5 {
		t.Errorf("Recommend = %+v, want 5/5/5", cfg.Recommend)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Backend != CacheBackendMemory || cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "http://localhost:5173" {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d per %v", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() error = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"PRODUCTS_PATH", "data.products_path"},
		{"INTERACTIONS_PATH", "data.interactions_path"},
		{"RELOAD_INTERVAL", "data.reload_interval"},
		{"RECOMMEND_RESULT_LIMIT", "recommend.result_limit"},
		{"CACHE_BACKEND", "cache.backend"},
		{"REDIS_ADDR", "cache.redis_addr"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestFindConfigFile_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv(ConfigPathEnvVar, path)
	if got := findConfigFile(); got != path {
		t.Errorf("findConfigFile() = %q, want %q", got, path)
	}

	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() with missing CONFIG_PATH = %q, want empty", got)
	}
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8000 || cfg.Recommend.ResultLimit != 5 {
		t.Errorf("LoadWithKoanf() = %+v", cfg)
	}
}

func TestLoadWithKoanf_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9100
data:
  products_path: /srv/products.csv
  reload_interval: 10m
recommend:
  result_limit: 10
cache:
  backend: redis
  redis_addr: cache:6379
security:
  cors_origins:
    - https://shop.example.com
    - https://admin.example.com
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want 9100", cfg.Server.Port)
	}
	if cfg.Data.ProductsPath != "/srv/products.csv" || cfg.Data.ReloadInterval != 10*time.Minute {
		t.Errorf("Data = %+v", cfg.Data)
	}
	if cfg.Data.InteractionsPath != "data/user_interactions.csv" {
		t.Errorf("Data.InteractionsPath lost its default: %q", cfg.Data.InteractionsPath)
	}
	if cfg.Recommend.ResultLimit != 10 || cfg.Recommend.SimilarTopN != 5 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Cache.Backend != CacheBackendRedis || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if len(cfg.Security.CORSOrigins) != 2 {
		t.Errorf("Security.CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9200")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("RELOAD_INTERVAL", "30s")
	t.Setenv("LOG_CALLER", "true")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9200 {
		t.Errorf("Server.Port = %d, want 9200", cfg.Server.Port)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Data.ReloadInterval != 30*time.Second {
		t.Errorf("Data.ReloadInterval = %v, want 30s", cfg.Data.ReloadInterval)
	}
	if !cfg.Logging.Caller {
		t.Error("Logging.Caller = false, want true")
	}
}

func TestLoadWithKoanf_Invalid(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, "")
	t.Setenv("LOG_LEVEL", "verbose")

	if _, err := LoadWithKoanf(); err == nil {
		t.Error("LoadWithKoanf() expected error for invalid log level")
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty products path", func(c *Config) { c.Data.ProductsPath = "" }, true},
		{"negative reload", func(c *Config) { c.Data.ReloadInterval = -time.Second }, true},
		{"sub-second reload", func(c *Config) { c.Data.ReloadInterval = time.Millisecond }, true},
		{"zero result limit", func(c *Config) { c.Recommend.ResultLimit = 0 }, true},
		{"inverted content scores", func(c *Config) { c.Recommend.ContentScoreMin = 0.9; c.Recommend.ContentScoreMax = 0.1 }, true},
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis without address", func(c *Config) { c.Cache.Backend = CacheBackendRedis; c.Cache.RedisAddr = "" }, true},
		{"redis address without port", func(c *Config) { c.Cache.Backend = CacheBackendRedis; c.Cache.RedisAddr = "cache" }, true},
		{"redis backend ignored when disabled", func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.Backend = CacheBackendRedis
			c.Cache.RedisAddr = ""
		}, false},
		{"zero cache ttl", func(c *Config) { c.Cache.TTL = 0 }, true},
		{"rate limit too low", func(c *Config) { c.Security.RateLimitReqs = 0 }, true},
		{"rate limit window too long", func(c *Config) { c.Security.RateLimitWindow = 2 * time.Hour }, true},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, false},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestHasWildcardCORS(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	if cfg.HasWildcardCORS() {
		t.Error("default origins reported as wildcard")
	}
	cfg.Security.CORSOrigins = []string{"https://a.example.com", "*"}
	if !cfg.HasWildcardCORS() {
		t.Error("HasWildcardCORS() = false, want true")
	}
}
