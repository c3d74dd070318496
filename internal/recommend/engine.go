// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/productrec/internal/recommend/similarity"
)

// Note: This package has no dependencies on other internal packages apart
// from its own similarity subpackage. Callers record metrics from Stats.

// Engine is an immutable recommendation snapshot built from one products
// table and one interactions table. It is safe for concurrent use.
type Engine struct {
	config       Config
	logger       zerolog.Logger
	content      *ContentModel
	interactions *InteractionModel
	stats        Stats
}

// NewEngine validates the configuration and builds the content and
// interaction models concurrently. Any error is fatal for this snapshot.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewEngine(products []Product, interactions []Interaction, cfg Config, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recommend config: %w", err)
	}

	e := &Engine{
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}

	var g errgroup.Group
	g.Go(func() error {
		start := time.Now()
		m, err := BuildContentModel(products, similarity.EnglishStopwords())
		if err != nil {
			return err
		}
		e.content = m
		e.stats.ContentBuild = time.Since(start)
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		m, err := BuildInteractionModel(interactions)
		if err != nil {
			return err
		}
		e.interactions = m
		e.stats.InteractionBuild = time.Since(start)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	users, interacted := e.interactions.Dims()
	e.stats.Products = e.content.Len()
	e.stats.Interactions = e.interactions.rows
	e.stats.Users = users
	e.stats.InteractedProducts = interacted
	e.stats.BuiltAt = time.Now()

	e.logger.Info().
		Int("products", e.stats.Products).
		Int("interactions", e.stats.Interactions).
		Int("users", users).
		Dur("content_build", e.stats.ContentBuild).
		Dur("interaction_build", e.stats.InteractionBuild).
		Msg("recommendation engine built")

	return e, nil
}

// Stats returns a description of the snapshot.
func (e *Engine) Stats() Stats {
	if e == nil {
		return Stats{}
	}
	return e.stats
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// SimilarProducts returns up to topN products most similar to productID.
// A non-positive topN uses the configured default.
func (e *Engine) SimilarProducts(productID, topN int) []ScoredProduct {
	if e == nil {
		return []ScoredProduct{}
	}
	if topN <= 0 {
		topN = e.config.SimilarTopN
	}
	return e.content.SimilarProducts(productID, topN)
}

// HasProduct reports whether productID is in the catalog.
func (e *Engine) HasProduct(productID int) bool {
	if e == nil {
		return false
	}
	_, ok := e.content.Product(productID)
	return ok
}

// ContentRecommendations returns content candidates for the user's history.
func (e *Engine) ContentRecommendations(userID int) []Candidate {
	if e == nil {
		return []Candidate{}
	}
	return e.content.contentCandidates(e.interactions.History(userID), e.config)
}

// CollaborativeRecommendations returns collaborative candidates for the user.
func (e *Engine) CollaborativeRecommendations(userID int) ([]Candidate, error) {
	if e == nil {
		return nil, ErrNotBuilt
	}
	return e.interactions.CollaborativeRecommendations(userID, e.content)
}

// Recommend returns at most ResultLimit records for the user, best first.
// An unknown user, or an engine with no interaction data, yields an empty
// list and no error.
func (e *Engine) Recommend(ctx context.Context, userID int) ([]Recommendation, error) {
	if e == nil || !e.interactions.HasUser(userID) {
		return []Recommendation{}, nil
	}

	logger := e.requestLogger(ctx, userID)

	cb := e.ContentRecommendations(userID)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cf, err := e.CollaborativeRecommendations(userID)
	if err != nil {
		return nil, fmt.Errorf("collaborative recommendations for user %d: %w", userID, err)
	}

	merged := Merge(cb, cf)
	if len(merged) > e.config.ResultLimit {
		merged = merged[:e.config.ResultLimit]
	}

	logger.Debug().
		Int("content_candidates", len(cb)).
		Int("collaborative_candidates", len(cf)).
		Int("returned", len(merged)).
		Msg("recommendations computed")

	return merged, nil
}

// requestLogger prefers a request-scoped logger attached with
// zerolog.Logger.WithContext so request ids flow into engine logs.
func (e *Engine) requestLogger(ctx context.Context, userID int) zerolog.Logger {
	base := e.logger
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		base = l.With().Str("component", "recommend").Logger()
	}
	return base.With().Int("user_id", userID).Logger()
}
