// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/productrec/internal/dataset"
	"github.com/tomtom215/productrec/internal/metrics"
	"github.com/tomtom215/productrec/internal/recommend"
)

// ReloadConfig holds configuration for the reload service.
type ReloadConfig struct {
	// Interval between checks. Zero or negative disables reloading.
	Interval time.Duration

	ProductsPath     string
	InteractionsPath string

	// Recommend configures every rebuilt engine.
	Recommend recommend.Config
}

// ReloadService periodically rebuilds the engine from the data files and
// installs the result in a dataset.Holder. A failed rebuild keeps the
// current snapshot in service. Files whose stamps match the ones the
// installed snapshot was loaded from are not reloaded.
type ReloadService struct {
	holder *dataset.Holder
	config ReloadConfig
	logger zerolog.Logger
	name   string

	// load builds a snapshot; replaced in tests.
	load func() (*dataset.Snapshot, error)
}

// NewReloadService creates a reload service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewReloadService(holder *dataset.Holder, cfg ReloadConfig, logger zerolog.Logger) *ReloadService {
	s := &ReloadService{
		holder: holder,
		config: cfg,
		logger: logger.With().Str("service", "reload").Logger(),
		name:   "reload-service",
	}
	s.load = func() (*dataset.Snapshot, error) {
		return dataset.LoadSnapshot(cfg.ProductsPath, cfg.InteractionsPath, cfg.Recommend, logger)
	}
	return s
}

// Serve implements suture.Service.
func (s *ReloadService) Serve(ctx context.Context) error {
	if s.config.Interval <= 0 {
		s.logger.Info().Msg("dataset reload disabled")
		return suture.ErrDoNotRestart
	}

	s.logger.Info().
		Dur("interval", s.config.Interval).
		Str("products_path", s.config.ProductsPath).
		Str("interactions_path", s.config.InteractionsPath).
		Msg("dataset reload service running")

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset reload service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if _, err := s.Reload(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("dataset reload failed; keeping current snapshot")
			}
		}
	}
}

// Reload rebuilds and installs a snapshot if either data file changed.
// It reports whether a new snapshot was installed.
func (s *ReloadService) Reload(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	stamps, err := dataset.StatSources(s.config.ProductsPath, s.config.InteractionsPath)
	if err != nil {
		metrics.RecordReload(err)
		return false, err
	}
	if s.holder.Load().SourcesMatch(stamps) {
		s.logger.Debug().Msg("data files unchanged")
		return false, nil
	}

	start := time.Now()
	snap, err := s.load()
	if err != nil {
		metrics.RecordReload(err)
		return false, err
	}

	version := s.holder.Swap(snap)
	metrics.RecordReload(nil)
	metrics.RecordSnapshot(snap.Engine.Stats())

	s.logger.Info().
		Uint64("version", version).
		Str("cache_scope", snap.CacheScope()).
		Dur("duration", time.Since(start)).
		Msg("dataset reloaded")
	return true, nil
}

// String returns the service name for logging.
func (s *ReloadService) String() string {
	return s.name
}
