// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/tomtom215/productrec/internal/recommend/similarity"
)

// InteractionModel holds the user-item matrix, the user similarity matrix
// and each user's interaction history.
type InteractionModel struct {
	userItem *similarity.Matrix
	userSim  *similarity.Matrix
	history  map[int][]int
	rows     int
	maxValue float64
}

type pairKey struct {
	user, product int
}

// BuildInteractionModel pivots interactions into a user-item matrix, using
// the mean for repeated (user, product) pairs and 0 for absent pairs, then
// computes cosine similarity between user rows.
func BuildInteractionModel(interactions []Interaction) (*InteractionModel, error) {
	if len(interactions) == 0 {
		return nil, fmt.Errorf("interactions: %w", ErrEmptyDataset)
	}

	sums := make(map[pairKey]float64)
	counts := make(map[pairKey]int)
	history := make(map[int][]int)
	userSet := make(map[int]struct{})
	productSet := make(map[int]struct{})

	for i, in := range interactions {
		if math.IsNaN(in.Value) || math.IsInf(in.Value, 0) || in.Value < 0 {
			return nil, fmt.Errorf("interactions row %d (user %d, product %d, value %v): %w",
				i, in.UserID, in.ProductID, in.Value, ErrInvalidInteraction)
		}
		k := pairKey{in.UserID, in.ProductID}
		sums[k] += in.Value
		counts[k]++
		history[in.UserID] = append(history[in.UserID], in.ProductID)
		userSet[in.UserID] = struct{}{}
		productSet[in.ProductID] = struct{}{}
	}

	users := sortedKeys(userSet)
	products := sortedKeys(productSet)

	// Indices are positional here; sortedKeys has no duplicates.
	userPos := make(map[int]int, len(users))
	for i, u := range users {
		userPos[u] = i
	}
	productPos := make(map[int]int, len(products))
	for j, p := range products {
		productPos[p] = j
	}

	data := mat.NewDense(len(users), len(products), nil)
	for k, sum := range sums {
		data.Set(userPos[k.user], productPos[k.product], sum/float64(counts[k]))
	}

	userItem, err := similarity.NewMatrix(data, users, products)
	if err != nil {
		return nil, fmt.Errorf("user-item matrix: %w", err)
	}
	userSim, err := similarity.NewMatrix(similarity.PairwiseCosine(data, len(users)), users, users)
	if err != nil {
		return nil, fmt.Errorf("user similarity matrix: %w", err)
	}

	return &InteractionModel{
		userItem: userItem,
		userSim:  userSim,
		history:  history,
		rows:     len(interactions),
		maxValue: userItem.Max(),
	}, nil
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// HasUser reports whether the user appears in the user-item matrix.
func (m *InteractionModel) HasUser(userID int) bool {
	if m == nil {
		return false
	}
	_, ok := m.userItem.RowIndex(userID)
	return ok
}

// History returns the products the user interacted with, in interaction
// table order. Repeated interactions appear repeatedly.
func (m *InteractionModel) History(userID int) []int {
	if m == nil {
		return nil
	}
	return m.history[userID]
}

// Value returns the aggregated (mean) interaction for a user and product.
func (m *InteractionModel) Value(userID, productID int) (float64, bool) {
	if m == nil {
		return 0, false
	}
	return m.userItem.Value(userID, productID)
}

// UserSimilarity returns the behavioral similarity of two users.
func (m *InteractionModel) UserSimilarity(a, b int) (float64, bool) {
	if m == nil {
		return 0, false
	}
	return m.userSim.Value(a, b)
}

// Dims returns the number of users and products in the user-item matrix.
func (m *InteractionModel) Dims() (users, products int) {
	if m == nil {
		return 0, 0
	}
	return m.userItem.Dims()
}

// CollaborativeRecommendations scores every product the user has not
// interacted with by its mean interaction across all other users.
//
// Neighbors are every other user, ranked by similarity; there is no cutoff.
// Scores are divided by the largest entry of the user-item matrix so they
// share the [0,1] range of content scores. Products missing from catalog
// are dropped since they cannot be described.
func (m *InteractionModel) CollaborativeRecommendations(userID int, catalog *ContentModel) ([]Candidate, error) {
	if m == nil || m.userSim == nil {
		return nil, ErrNotBuilt
	}

	out := []Candidate{}
	u, ok := m.userSim.RowIndex(userID)
	if !ok {
		return out, nil
	}

	neighbors := similarity.RankDescending(m.userSim.Row(u), u)
	if len(neighbors) == 0 {
		return out, nil
	}

	_, nProducts := m.userItem.Dims()
	means := make([]float64, nProducts)
	for _, n := range neighbors {
		for j := range means {
			means[j] += m.userItem.At(n, j)
		}
	}

	unseen := make([]int, 0, nProducts)
	for j := range means {
		means[j] /= float64(len(neighbors))
		if m.userItem.At(u, j) == 0 {
			unseen = append(unseen, j)
		}
	}
	sort.SliceStable(unseen, func(a, b int) bool {
		return means[unseen[a]] > means[unseen[b]]
	})

	for _, j := range unseen {
		p, ok := catalog.Product(m.userItem.ColKey(j))
		if !ok {
			continue
		}
		score := 0.0
		if m.maxValue > 0 {
			score = math.Min(means[j]/m.maxValue, 1)
		}
		out = append(out, Candidate{
			ProductID:   p.ID,
			Description: p.Description,
			Score:       score,
		})
	}
	return out, nil
}
