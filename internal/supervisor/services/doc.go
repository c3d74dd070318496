// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

// Package services provides suture.Service wrappers for productrec components.
//
//   - HTTPServerService: runs an *http.Server with graceful shutdown
//   - ReloadService: rebuilds the recommendation snapshot on a ticker
//
// Each wrapper implements fmt.Stringer so supervisor events name the service.
package services
