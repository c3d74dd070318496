// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import "time"

// Product is one row of the product catalog.
//
// Product ids are expected to be unique but this is not enforced. When an
// id repeats, every lookup by id resolves to the first row carrying it.
type Product struct {
	// ID is the product identifier.
	ID int `json:"product_id"`

	// Description is the free text used for content similarity.
	Description string `json:"product_description"`
}

// Interaction records how strongly a user engaged with a product.
// Several rows may share a (UserID, ProductID) pair; they are averaged.
type Interaction struct {
	// UserID is the user identifier.
	UserID int `json:"user_id"`

	// ProductID is the product identifier.
	ProductID int `json:"product_id"`

	// Value is the interaction strength. Must be finite and non-negative;
	// negative or non-finite values fail the build with
	// ErrInvalidInteraction. Earlier versions of the service accepted any
	// number here.
	// Collaborative scores are divided by the largest value, which needs
	// a non-negative matrix to stay in [0,1].
	Value float64 `json:"interaction" validate:"gte=0"`
}

// ScoredProduct is a product paired with its similarity to a query product.
type ScoredProduct struct {
	ProductID          int     `json:"product_id"`
	ProductDescription string  `json:"product_description"`
	Similarity         float64 `json:"similarity"`
}

// Candidate is an intermediate recommendation produced by one signal.
type Candidate struct {
	ProductID   int
	Description string
	Score       float64
}

// Recommendation is one record of a user's final ranked list.
type Recommendation struct {
	// ProductID is the recommended product.
	ProductID int `json:"product_id"`

	// ProductDescription is copied from the catalog.
	ProductDescription string `json:"product_description"`

	// RecommendationValue is the blended score in [0,1].
	RecommendationValue float64 `json:"recommendation_value"`
}

// Stats describes a built engine snapshot.
type Stats struct {
	// Version increases with every snapshot installed in a Holder.
	// Engines built outside a Holder report 0.
	Version uint64 `json:"version"`

	// BuiltAt is when construction finished.
	BuiltAt time.Time `json:"built_at"`

	// Products is the number of catalog rows.
	Products int `json:"products"`

	// Interactions is the number of interaction rows.
	Interactions int `json:"interactions"`

	// Users is the number of distinct users (rows of the user-item matrix).
	Users int `json:"users"`

	// InteractedProducts is the number of distinct products with interactions.
	InteractedProducts int `json:"interacted_products"`

	// ContentBuild is the time spent on the product similarity matrix.
	ContentBuild time.Duration `json:"content_build_ns"`

	// InteractionBuild is the time spent on the user-item and user similarity matrices.
	InteractionBuild time.Duration `json:"interaction_build_ns"`
}
