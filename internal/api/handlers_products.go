// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package api

import (
	"fmt"
	"net/http"
)

// Products handles GET /api/products and returns the catalog in file order.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	respondJSON(w, r, http.StatusOK, s.Products())
}

// SimilarProducts handles GET /api/products/{productID}/similar.
// Returns up to ?limit products ranked by description similarity.
func (h *Handler) SimilarProducts(w http.ResponseWriter, r *http.Request) {
	productID, err := pathInt(r, "productID")
	if err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeInvalidProductID, "Product ID must be an integer", err)
		return
	}

	req, apiErr := parseSimilarRequest(r)
	if apiErr != nil {
		respondErrorDetails(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details, nil)
		return
	}

	s := h.snapshot(w, r)
	if s == nil {
		return
	}
	if !s.Engine.HasProduct(productID) {
		respondError(w, r, http.StatusNotFound, ErrCodeProductNotFound,
			fmt.Sprintf("Product with ID %d not found.", productID), nil)
		return
	}

	respondJSON(w, r, http.StatusOK, s.Engine.SimilarProducts(productID, req.Limit))
}
