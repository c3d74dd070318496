// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/productrec/internal/metrics"
)

// recommendTimeout bounds a single recommendation computation.
const recommendTimeout = 10 * time.Second

// Recommendations handles GET /api/recommendations/{userID}.
// An unknown user yields an empty list with status 200.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	userID, err := pathInt(r, "userID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUserID, "User ID must be an integer", err)
		return
	}

	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	scope := s.CacheScope()

	if recs, ok := h.cache.Get(r.Context(), scope, userID); ok {
		metrics.RecordRecommendation(metrics.OutcomeCacheHit, len(recs), time.Since(start))
		respondJSON(w, r, http.StatusOK, recs)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	recs, err := s.Engine.Recommend(ctx, userID)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, 0, time.Since(start))
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError,
			"Failed to generate recommendations", err)
		return
	}

	// Unknown ids are not cached so arbitrary ids cannot churn the cache.
	if _, known := s.UserInteractions(userID); !known {
		metrics.RecordRecommendation(metrics.OutcomeUnknownUser, 0, time.Since(start))
		respondJSON(w, r, http.StatusOK, recs)
		return
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, len(recs), time.Since(start))
	h.cache.Set(r.Context(), scope, userID, recs)
	respondJSON(w, r, http.StatusOK, recs)
}
