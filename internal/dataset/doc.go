// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

// Package dataset loads the product catalog and the user interaction log
// from delimited files and exposes them to the API and the engine.
//
// # File Formats
//
// Both files are comma-separated with a header row. Columns are matched by
// header name, so column order is free and extra columns are ignored.
//
//	products.csv:          product_id, product_description
//	user_interactions.csv: user_id, product_id, interaction
//
// # Errors
//
// A missing required column wraps recommend.ErrMissingColumns. A file with
// no data rows wraps recommend.ErrEmptyDataset. A row that cannot be parsed
// or fails validation is reported as *RowError with the file and line.
// All of these are startup failures.
package dataset
