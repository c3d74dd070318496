// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

// Package similarity provides the vector-space building blocks used by the
// recommendation engine.
//
// # Components
//
//   - Matrix: a dense gonum matrix with explicit ordered row/column keys and
//     key-to-index maps. Every lookup goes through the index maps.
//   - Vectorizer: TF-IDF weighting over a fixed stopword set, vocabulary
//     fitted once from a corpus.
//   - PairwiseCosine: cosine similarity between every pair of rows.
//   - RankDescending: stable descending ordering of a score row.
//
// # Zero Vectors
//
// A vector with zero norm has similarity 0 against every vector, itself
// included. No routine in this package divides by zero or returns NaN.
//
// # Thread Safety
//
// Values are immutable once constructed and safe for concurrent reads.
package similarity
