// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package recommend

import "sort"

// Merge outer-joins content and collaborative candidates by product id.
//
// A product missing from one list scores 0 on that side, so the blended
// value is (content + collaborative) / 2 in every case. The description
// comes from the content side when both have it. The result is sorted by
// value descending; ties keep first appearance, content list first.
func Merge(content, collaborative []Candidate) []Recommendation {
	type entry struct {
		desc   string
		cb, cf float64
	}

	order := make([]int, 0, len(content)+len(collaborative))
	entries := make(map[int]*entry, cap(order))

	get := func(id int) *entry {
		e, ok := entries[id]
		if !ok {
			e = &entry{}
			entries[id] = e
			order = append(order, id)
		}
		return e
	}

	for _, c := range content {
		e := get(c.ProductID)
		e.cb = c.Score
		if e.desc == "" {
			e.desc = c.Description
		}
	}
	for _, c := range collaborative {
		e := get(c.ProductID)
		e.cf = c.Score
		if e.desc == "" {
			e.desc = c.Description
		}
	}

	out := make([]Recommendation, 0, len(order))
	for _, id := range order {
		e := entries[id]
		out = append(out, Recommendation{
			ProductID:           id,
			ProductDescription:  e.desc,
			RecommendationValue: (e.cb + e.cf) / 2,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationValue > out[j].RecommendationValue
	})
	return out
}
