// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package dataset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/productrec/internal/recommend"
)

// Dataset is an immutable pair of source tables.
type Dataset struct {
	products     []recommend.Product
	interactions []recommend.Interaction
	byUser       map[int][]recommend.Interaction
	userIDs      []int
	digest       string
}

// New wraps already-parsed tables. Both must be non-empty.
func New(products []recommend.Product, interactions []recommend.Interaction) (*Dataset, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("products: %w", recommend.ErrEmptyDataset)
	}
	if len(interactions) == 0 {
		return nil, fmt.Errorf("interactions: %w", recommend.ErrEmptyDataset)
	}

	d := &Dataset{
		products:     products,
		interactions: interactions,
		byUser:       make(map[int][]recommend.Interaction),
	}
	for _, in := range interactions {
		if _, seen := d.byUser[in.UserID]; !seen {
			d.userIDs = append(d.userIDs, in.UserID)
		}
		d.byUser[in.UserID] = append(d.byUser[in.UserID], in)
	}
	d.digest = digestTables(products, interactions)
	return d, nil
}

// digestTables hashes both tables row by row in file order.
func digestTables(products []recommend.Product, interactions []recommend.Interaction) string {
	h := sha256.New()
	fmt.Fprintf(h, "products:%d\n", len(products))
	for _, p := range products {
		fmt.Fprintf(h, "%d\x1f%q\n", p.ID, p.Description)
	}
	fmt.Fprintf(h, "interactions:%d\n", len(interactions))
	for _, in := range interactions {
		fmt.Fprintf(h, "%d\x1f%d\x1f%v\n", in.UserID, in.ProductID, in.Value)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Load reads both files concurrently.
func Load(productsPath, interactionsPath string) (*Dataset, error) {
	var (
		products     []recommend.Product
		interactions []recommend.Interaction
		g            errgroup.Group
	)
	g.Go(func() error {
		var err error
		products, err = LoadProducts(productsPath)
		return err
	})
	g.Go(func() error {
		var err error
		interactions, err = LoadInteractions(interactionsPath)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return New(products, interactions)
}

// Products returns every catalog row in file order.
func (d *Dataset) Products() []recommend.Product {
	return d.products
}

// Interactions returns every interaction row in file order.
func (d *Dataset) Interactions() []recommend.Interaction {
	return d.interactions
}

// UserIDs returns distinct user ids in order of first appearance.
func (d *Dataset) UserIDs() []int {
	return d.userIDs
}

// UserInteractions returns the user's rows in file order.
func (d *Dataset) UserInteractions(userID int) ([]recommend.Interaction, bool) {
	rows, ok := d.byUser[userID]
	return rows, ok
}

// Digest is a hex SHA-256 of both tables. Datasets with identical rows in
// identical order have equal digests, whatever process loaded them.
func (d *Dataset) Digest() string {
	return d.digest
}

// Build constructs a recommendation engine from the dataset.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (d *Dataset) Build(cfg recommend.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	return recommend.NewEngine(d.products, d.interactions, cfg, logger)
}
