// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/tomtom215/productrec/internal/recommend"
	"github.com/tomtom215/productrec/internal/validation"
)

// Required header names.
const (
	ColumnProductID          = "product_id"
	ColumnProductDescription = "product_description"
	ColumnUserID             = "user_id"
	ColumnInteraction        = "interaction"
)

// RowError reports a row that could not be parsed or validated.
type RowError struct {
	Source string
	Line   int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s line %d column %s: %v", e.Source, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s line %d: %v", e.Source, e.Line, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// table is a header-indexed view over a CSV stream.
type table struct {
	source  string
	reader  *csv.Reader
	columns map[string]int
}

func openTable(source string, r io.Reader, required ...string) (*table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: no header row: %w", source, recommend.ErrEmptyDataset)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}

	var missing []string
	for _, col := range required {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%s must contain columns %v, missing %v: %w",
			source, required, missing, recommend.ErrMissingColumns)
	}

	cr.FieldsPerRecord = len(header)
	return &table{source: source, reader: cr, columns: columns}, nil
}

// each calls fn for every data row. fn receives a field accessor and the
// 1-based line number of the row.
func (t *table) each(fn func(field func(string) string, line int) error) (int, error) {
	rows := 0
	for {
		record, err := t.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("%s: %w", t.source, err)
		}
		line, _ := t.reader.FieldPos(0)
		field := func(name string) string {
			return strings.TrimSpace(record[t.columns[name]])
		}
		if err := fn(field, line); err != nil {
			return rows, err
		}
		rows++
	}
	if rows == 0 {
		return 0, fmt.Errorf("%s: %w", t.source, recommend.ErrEmptyDataset)
	}
	return rows, nil
}

func (t *table) parseInt(field func(string) string, column string, line int) (int, error) {
	v, err := strconv.Atoi(field(column))
	if err != nil {
		return 0, &RowError{Source: t.source, Line: line, Column: column, Err: err}
	}
	return v, nil
}

// ReadProducts parses a products table. source names the stream in errors.
func ReadProducts(source string, r io.Reader) ([]recommend.Product, error) {
	t, err := openTable(source, r, ColumnProductID, ColumnProductDescription)
	if err != nil {
		return nil, err
	}

	var products []recommend.Product
	_, err = t.each(func(field func(string) string, line int) error {
		id, err := t.parseInt(field, ColumnProductID, line)
		if err != nil {
			return err
		}
		products = append(products, recommend.Product{
			ID:          id,
			Description: field(ColumnProductDescription),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ReadInteractions parses an interactions table. source names the stream in errors.
func ReadInteractions(source string, r io.Reader) ([]recommend.Interaction, error) {
	t, err := openTable(source, r, ColumnUserID, ColumnProductID, ColumnInteraction)
	if err != nil {
		return nil, err
	}

	var interactions []recommend.Interaction
	_, err = t.each(func(field func(string) string, line int) error {
		userID, err := t.parseInt(field, ColumnUserID, line)
		if err != nil {
			return err
		}
		productID, err := t.parseInt(field, ColumnProductID, line)
		if err != nil {
			return err
		}
		value, err := strconv.ParseFloat(field(ColumnInteraction), 64)
		if err != nil {
			return &RowError{Source: t.source, Line: line, Column: ColumnInteraction, Err: err}
		}

		in := recommend.Interaction{UserID: userID, ProductID: productID, Value: value}
		if verr := validation.ValidateStruct(&in); verr != nil {
			return &RowError{
				Source: t.source,
				Line:   line,
				Column: ColumnInteraction,
				Err:    fmt.Errorf("%w: %v", recommend.ErrInvalidInteraction, verr),
			}
		}
		interactions = append(interactions, in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return interactions, nil
}

// LoadProducts reads a products file.
func LoadProducts(path string) ([]recommend.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products file: %w", err)
	}
	defer f.Close()
	return ReadProducts(path, f)
}

// LoadInteractions reads an interactions file.
func LoadInteractions(path string) ([]recommend.Interaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interactions file: %w", err)
	}
	defer f.Close()
	return ReadInteractions(path, f)
}
