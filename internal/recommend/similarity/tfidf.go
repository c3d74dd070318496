// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package similarity

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vectorizer converts documents into L2-normalized TF-IDF vectors.
//
// Term frequency is the raw count of a term in the document. Inverse
// document frequency is smoothed: idf(t) = ln((1+n)/(1+df(t))) + 1.
type Vectorizer struct {
	stopwords  StopwordSet
	vocabulary map[string]int
	terms      []string
	idf        []float64
}

// NewVectorizer creates a vectorizer that drops the given stopwords.
func NewVectorizer(stopwords StopwordSet) *Vectorizer {
	return &Vectorizer{stopwords: stopwords}
}

// Tokenize lowercases text and splits it into runs of two or more letters,
// digits or underscores. Stopwords are removed.
func (v *Vectorizer) Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if len([]rune(f)) < 2 || v.stopwords.Contains(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Vocabulary returns the fitted terms in column order.
func (v *Vectorizer) Vocabulary() []string {
	return append([]string(nil), v.terms...)
}

// FitTransform fits the vocabulary and IDF weights on docs and returns one
// row per document. The result is nil when the vocabulary is empty, which
// callers treat as every document being a zero vector.
func (v *Vectorizer) FitTransform(docs []string) *mat.Dense {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)

	for i, doc := range docs {
		tc := make(map[string]int)
		for _, tok := range v.Tokenize(doc) {
			tc[tok]++
		}
		for term := range tc {
			df[term]++
		}
		counts[i] = tc
	}

	v.terms = make([]string, 0, len(df))
	for term := range df {
		v.terms = append(v.terms, term)
	}
	sort.Strings(v.terms)

	v.vocabulary = make(map[string]int, len(v.terms))
	v.idf = make([]float64, len(v.terms))
	n := float64(len(docs))
	for j, term := range v.terms {
		v.vocabulary[term] = j
		v.idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	if len(v.terms) == 0 || len(docs) == 0 {
		return nil
	}

	out := mat.NewDense(len(docs), len(v.terms), nil)
	row := make([]float64, len(v.terms))
	for i, tc := range counts {
		for j := range row {
			row[j] = 0
		}
		for term, c := range tc {
			j := v.vocabulary[term]
			row[j] = float64(c) * v.idf[j]
		}
		if norm := floats.Norm(row, 2); norm > 0 {
			floats.Scale(1/norm, row)
		}
		out.SetRow(i, row)
	}
	return out
}
