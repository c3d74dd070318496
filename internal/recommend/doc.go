// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

// Package recommend implements the hybrid product recommendation engine.
//
// # Architecture
//
// The engine blends two signals into one ranked list per user:
//
//   - Content-based: TF-IDF cosine similarity between product descriptions.
//     Each product the user interacted with contributes its nearest
//     neighbors; candidates get a positional score from 1.0 down to 0.5.
//   - Collaborative: cosine similarity between users' interaction rows.
//     Every other user participates; each unseen product is scored by its
//     mean interaction across those users.
//
// Both candidate lists are outer-joined by product id and averaged, with a
// missing side counting as 0. The top five records are returned.
//
// # Lifecycle
//
// All matrices are built once by NewEngine and never mutated. An Engine is
// a single immutable snapshot that can be shared by any number of request
// handlers without locking. Reloading data means building a new Engine and
// swapping it into a Holder.
//
// # Errors
//
// Malformed or empty input tables fail NewEngine with ErrEmptyDataset or
// ErrInvalidInteraction; the caller should refuse to serve. Unknown users
// and products are ordinary query shapes and return empty results.
//
// # Usage
//
//	engine, err := recommend.NewEngine(products, interactions, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	recs, err := engine.Recommend(ctx, userID)
package recommend
