// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/productrec/internal/cache"
	"github.com/tomtom215/productrec/internal/dataset"
)

// errNoSnapshot is logged when a request arrives before the first build.
var errNoSnapshot = errors.New("no recommendation snapshot loaded")

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_products.go: product catalog and similar products
//   - handlers_users.go: user ids and interaction history
//   - handlers_recommend.go: hybrid recommendations
//   - handlers_health.go: probes and snapshot status
type Handler struct {
	snapshots *dataset.Holder
	cache     *cache.RecommendationCache
	startTime time.Time
}

// NewHandler creates a handler serving the snapshots published by holder.
// recCache may be nil to disable result caching.
func NewHandler(holder *dataset.Holder, recCache *cache.RecommendationCache) *Handler {
	return &Handler{
		snapshots: holder,
		cache:     recCache,
		startTime: time.Now(),
	}
}

// snapshot returns the current snapshot or writes a 503 and returns nil.
func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) *dataset.Snapshot {
	s := h.snapshots.Load()
	if s == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Recommendation data is not loaded yet", errNoSnapshot)
		return nil
	}
	return s
}
