// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package similarity

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// PairwiseCosine returns the n x n cosine similarity between the rows of
// vectors. A nil vectors matrix is treated as n zero rows.
//
// The result is exactly symmetric, clamped to [0,1], and has 1 on the
// diagonal for nonzero rows and 0 for zero rows. Negative components are
// not expected; any negative cosine is clamped to 0.
func PairwiseCosine(vectors *mat.Dense, n int) *mat.Dense {
	out := mat.NewDense(n, n, nil)
	if vectors == nil {
		return out
	}

	var gram mat.Dense
	gram.Mul(vectors, vectors.T())

	norms := make([]float64, n)
	for i := range norms {
		norms[i] = math.Sqrt(gram.At(i, i))
	}

	for i := 0; i < n; i++ {
		if norms[i] == 0 {
			continue
		}
		out.Set(i, i, 1)
		for j := i + 1; j < n; j++ {
			if norms[j] == 0 {
				continue
			}
			s := clamp01(gram.At(i, j) / (norms[i] * norms[j]))
			out.Set(i, j, s)
			out.Set(j, i, s)
		}
	}
	return out
}

func clamp01(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}

// RankDescending returns the indices of scores ordered by score descending.
// Ties keep index order. The index exclude is omitted; pass -1 to keep all.
func RankDescending(scores []float64, exclude int) []int {
	idx := make([]int, 0, len(scores))
	for i := range scores {
		if i != exclude {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
	return idx
}
