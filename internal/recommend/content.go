// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tomtom215/productrec/internal/recommend/similarity"
)

// ContentModel holds the product catalog and its description similarity
// matrix. Rows and columns follow catalog order.
type ContentModel struct {
	products []Product
	sim      *similarity.Matrix
}

// BuildContentModel vectorizes every product description with TF-IDF and
// computes the pairwise cosine similarity matrix.
func BuildContentModel(products []Product, stopwords similarity.StopwordSet) (*ContentModel, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("products: %w", ErrEmptyDataset)
	}

	docs := make([]string, len(products))
	ids := make([]int, len(products))
	for i, p := range products {
		docs[i] = p.Description
		ids[i] = p.ID
	}

	vectors := similarity.NewVectorizer(stopwords).FitTransform(docs)
	sim, err := similarity.NewMatrix(similarity.PairwiseCosine(vectors, len(products)), ids, ids)
	if err != nil {
		return nil, fmt.Errorf("product similarity matrix: %w", err)
	}

	return &ContentModel{
		products: append([]Product(nil), products...),
		sim:      sim,
	}, nil
}

// Product returns the first catalog row with the given id.
func (m *ContentModel) Product(productID int) (Product, bool) {
	if m == nil {
		return Product{}, false
	}
	i, ok := m.sim.RowIndex(productID)
	if !ok {
		return Product{}, false
	}
	return m.products[i], true
}

// Len returns the number of catalog rows.
func (m *ContentModel) Len() int {
	if m == nil {
		return 0
	}
	return len(m.products)
}

// Similarity returns the description similarity of two products.
func (m *ContentModel) Similarity(a, b int) (float64, bool) {
	if m == nil {
		return 0, false
	}
	return m.sim.Value(a, b)
}

// SimilarProducts returns up to topN products most similar to productID,
// best first. Ties keep catalog order. Unknown ids and an unbuilt model
// yield an empty result.
//
// Only the first catalog row for productID is excluded. When the id is
// duplicated, its later rows are ordinary neighbors and can appear in the
// result with their own scores.
func (m *ContentModel) SimilarProducts(productID, topN int) []ScoredProduct {
	out := []ScoredProduct{}
	if m == nil || topN <= 0 {
		return out
	}
	i, ok := m.sim.RowIndex(productID)
	if !ok {
		return out
	}

	scores := m.sim.Row(i)
	for _, j := range similarity.RankDescending(scores, i) {
		if len(out) == topN {
			break
		}
		p := m.products[j]
		out = append(out, ScoredProduct{
			ProductID:          p.ID,
			ProductDescription: p.Description,
			Similarity:         scores[j],
		})
	}
	return out
}

// contentCandidates expands a user's history into content candidates.
//
// Neighbor lists are concatenated in history order and deduplicated by
// first occurrence. Products already in the history are removed unless
// that would leave nothing, in which case the first fallbackSize
// unfiltered candidates are kept instead.
func (m *ContentModel) contentCandidates(history []int, cfg Config) []Candidate {
	out := []Candidate{}
	if m == nil || len(history) == 0 {
		return out
	}

	seen := make(map[int]struct{})
	var deduped []ScoredProduct
	for _, pid := range history {
		for _, sp := range m.SimilarProducts(pid, cfg.SimilarTopN) {
			if _, dup := seen[sp.ProductID]; dup {
				continue
			}
			seen[sp.ProductID] = struct{}{}
			deduped = append(deduped, sp)
		}
	}

	known := make(map[int]struct{}, len(history))
	for _, pid := range history {
		known[pid] = struct{}{}
	}

	selected := make([]ScoredProduct, 0, len(deduped))
	for _, sp := range deduped {
		if _, ok := known[sp.ProductID]; !ok {
			selected = append(selected, sp)
		}
	}
	if len(selected) == 0 {
		selected = deduped[:min(cfg.FallbackSize, len(deduped))]
	}

	scores := positionalScores(len(selected), cfg.ContentScoreMax, cfg.ContentScoreMin)
	for i, sp := range selected {
		out = append(out, Candidate{
			ProductID:   sp.ProductID,
			Description: sp.ProductDescription,
			Score:       scores[i],
		})
	}
	return out
}

// positionalScores returns n values evenly spaced from hi down to lo.
// A single value is hi.
func positionalScores(n int, hi, lo float64) []float64 {
	switch n {
	case 0:
		return nil
	case 1:
		return []float64{hi}
	}
	return floats.Span(make([]float64, n), hi, lo)
}
