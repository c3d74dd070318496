// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/productrec/internal/recommend"
)

// HealthResponse is the body of the probe endpoints.
type HealthResponse struct {
	Status  string  `json:"status"`
	Uptime  float64 `json:"uptime_seconds"`
	Version uint64  `json:"snapshot_version,omitempty"`
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	recommend.Stats
	CacheScope string  `json:"cache_scope"`
	Cache      string  `json:"cache"`
	Uptime     float64 `json:"uptime_seconds"`
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of data state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, HealthResponse{
		Status: "alive",
		Uptime: time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 503 until a snapshot is installed.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	respondJSON(w, r, http.StatusOK, HealthResponse{
		Status:  "ready",
		Uptime:  time.Since(h.startTime).Seconds(),
		Version: s.Version(),
	})
}

// Status handles GET /api/status and describes the current snapshot.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	respondJSON(w, r, http.StatusOK, StatusResponse{
		Stats:      s.Engine.Stats(),
		CacheScope: s.CacheScope(),
		Cache:      h.cache.Backend(),
		Uptime:     time.Since(h.startTime).Seconds(),
	})
}
