// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package similarity

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense matrix with labeled rows and columns.
//
// Keys keep their construction order. When a key appears more than once,
// the index map resolves it to its first position; later duplicates remain
// addressable by position only.
type Matrix struct {
	data     *mat.Dense
	rowKeys  []int
	colKeys  []int
	rowIndex map[int]int
	colIndex map[int]int
}

// NewMatrix wraps data with the given row and column keys. The key slices
// are copied and must match the dimensions of data.
func NewMatrix(data *mat.Dense, rowKeys, colKeys []int) (*Matrix, error) {
	if data == nil {
		return nil, fmt.Errorf("matrix data is nil")
	}
	r, c := data.Dims()
	if r != len(rowKeys) || c != len(colKeys) {
		return nil, fmt.Errorf("matrix is %dx%d but has %d row keys and %d column keys",
			r, c, len(rowKeys), len(colKeys))
	}

	return &Matrix{
		data:     data,
		rowKeys:  append([]int(nil), rowKeys...),
		colKeys:  append([]int(nil), colKeys...),
		rowIndex: firstIndex(rowKeys),
		colIndex: firstIndex(colKeys),
	}, nil
}

func firstIndex(keys []int) map[int]int {
	idx := make(map[int]int, len(keys))
	for i, k := range keys {
		if _, seen := idx[k]; !seen {
			idx[k] = i
		}
	}
	return idx
}

// Dims returns the number of rows and columns. A nil matrix is 0x0.
func (m *Matrix) Dims() (rows, cols int) {
	if m == nil {
		return 0, 0
	}
	return m.data.Dims()
}

// RowIndex returns the position of the first row labeled key.
func (m *Matrix) RowIndex(key int) (int, bool) {
	if m == nil {
		return 0, false
	}
	i, ok := m.rowIndex[key]
	return i, ok
}

// ColIndex returns the position of the first column labeled key.
func (m *Matrix) ColIndex(key int) (int, bool) {
	if m == nil {
		return 0, false
	}
	j, ok := m.colIndex[key]
	return j, ok
}

// RowKey returns the label of row i.
func (m *Matrix) RowKey(i int) int { return m.rowKeys[i] }

// ColKey returns the label of column j.
func (m *Matrix) ColKey(j int) int { return m.colKeys[j] }

// At returns the element at position (i, j).
func (m *Matrix) At(i, j int) float64 { return m.data.At(i, j) }

// Value returns the element labeled (rowKey, colKey).
func (m *Matrix) Value(rowKey, colKey int) (float64, bool) {
	i, ok := m.RowIndex(rowKey)
	if !ok {
		return 0, false
	}
	j, ok := m.ColIndex(colKey)
	if !ok {
		return 0, false
	}
	return m.data.At(i, j), true
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	return mat.Row(nil, i, m.data)
}

// Max returns the largest element, or 0 for an empty matrix.
func (m *Matrix) Max() float64 {
	if r, c := m.Dims(); r == 0 || c == 0 {
		return 0
	}
	return mat.Max(m.data)
}

// Dense exposes the underlying matrix for read-only use.
func (m *Matrix) Dense() mat.Matrix { return m.data }
