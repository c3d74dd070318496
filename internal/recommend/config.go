// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import "fmt"

// Config contains tunables for the recommendation engine.
// The defaults reproduce the reference behavior and should rarely change.
type Config struct {
	// ResultLimit is the maximum number of records returned per user.
	ResultLimit int `json:"result_limit" koanf:"result_limit" validate:"min=1,max=100"`

	// SimilarTopN is the neighbor count fetched per history product.
	SimilarTopN int `json:"similar_top_n" koanf:"similar_top_n" validate:"min=1,max=100"`

	// FallbackSize is how many unfiltered candidates are kept when every
	// content neighbor is already in the user's history.
	FallbackSize int `json:"fallback_size" koanf:"fallback_size" validate:"min=1,max=100"`

	// ContentScoreMax is the positional score of the best content candidate.
	ContentScoreMax float64 `json:"content_score_max" koanf:"content_score_max"`

	// ContentScoreMin is the positional score of the worst content candidate.
	ContentScoreMin float64 `json:"content_score_min" koanf:"content_score_min"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		ResultLimit:     5,
		SimilarTopN:     5,
		FallbackSize:    5,
		ContentScoreMax: 1.0,
		ContentScoreMin: 0.5,
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c Config) Validate() error {
	if c.ResultLimit <= 0 {
		return fmt.Errorf("result_limit must be positive, got %d", c.ResultLimit)
	}
	if c.SimilarTopN <= 0 {
		return fmt.Errorf("similar_top_n must be positive, got %d", c.SimilarTopN)
	}
	if c.FallbackSize <= 0 {
		return fmt.Errorf("fallback_size must be positive, got %d", c.FallbackSize)
	}
	if c.ContentScoreMin < 0 || c.ContentScoreMax > 1 || c.ContentScoreMin > c.ContentScoreMax {
		return fmt.Errorf("content scores must satisfy 0 <= min <= max <= 1, got min=%v max=%v",
			c.ContentScoreMin, c.ContentScoreMax)
	}
	return nil
}
