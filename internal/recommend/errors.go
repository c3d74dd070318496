// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import "errors"

// Construction errors. Any of these means the source data cannot back a
// service and the process should not start serving.
var (
	// ErrMissingColumns is returned when an input table lacks a required column.
	ErrMissingColumns = errors.New("input table is missing required columns")

	// ErrEmptyDataset is returned when an input table has no rows.
	ErrEmptyDataset = errors.New("input table is empty")

	// ErrInvalidInteraction is returned for negative or non-finite interaction strengths.
	ErrInvalidInteraction = errors.New("invalid interaction strength")

	// ErrNotBuilt is returned when the user similarity matrix is queried
	// before it was built.
	ErrNotBuilt = errors.New("user similarity matrix not built")
)
