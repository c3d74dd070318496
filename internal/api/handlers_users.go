// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"fmt"
	"net/http"
)

// UserIDsResponse is the body of GET /api/users/ids.
type UserIDsResponse struct {
	UserIDs []int `json:"user_ids"`
}

// UserIDs handles GET /api/users/ids. Ids are in order of first appearance.
func (h *Handler) UserIDs(w http.ResponseWriter, r *http.Request) {
	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	respondJSON(w, r, http.StatusOK, UserIDsResponse{UserIDs: s.UserIDs()})
}

// User handles GET /api/users/{userID} and returns the user's interaction rows.
func (h *Handler) User(w http.ResponseWriter, r *http.Request) {
	userID, err := pathInt(r, "userID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidUserID, "User ID must be an integer", err)
		return
	}

	s := h.snapshot(w, r)
	if s == nil {
		return
	}

	rows, ok := s.UserInteractions(userID)
	if !ok {
		respondError(w, r, http.StatusNotFound, ErrCodeUserNotFound,
			fmt.Sprintf("User with ID %d not found.", userID), nil)
		return
	}
	respondJSON(w, r, http.StatusOK, rows)
}
