// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/productrec/internal/validation"
)

// SimilarRequest holds the query parameters of the similar-products endpoint.
type SimilarRequest struct {
	// Limit is the maximum number of products returned; 0 uses the configured default.
	Limit int `validate:"min=0,max=100"`
}

// pathInt parses a chi URL parameter as an int.
func pathInt(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an integer", name, sanitizeLogValue(raw))
	}
	return v, nil
}

// parseSimilarRequest reads and validates ?limit.
func parseSimilarRequest(r *http.Request) (SimilarRequest, *validation.APIError) {
	var req SimilarRequest
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return req, &validation.APIError{
				Code:    ErrCodeInvalidParameter,
				Message: "limit must be an integer",
				Details: map[string]interface{}{"field": "limit", "value": sanitizeLogValue(raw)},
			}
		}
		req.Limit = v
	}

	if verr := validation.ValidateStruct(&req); verr != nil {
		apiErr := verr.ToAPIError()
		apiErr.Code = ErrCodeInvalidParameter
		return req, apiErr
	}
	return req, nil
}
