// Productrec - Hybrid Product Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/productrec

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/productrec/internal/recommend"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadProducts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []recommend.Product
		wantErr error
	}{
		{
			name:  "basic",
			input: "product_id,product_description\n1,Product A\n2,Product B\n",
			want:  []recommend.Product{{ID: 1, Description: "Product A"}, {ID: 2, Description: "Product B"}},
		},
		{
			name:  "column order and extra columns",
			input: "sku,product_description,product_id\nx,Red apple,7\n",
			want:  []recommend.Product{{ID: 7, Description: "Red apple"}},
		},
		{
			name:  "byte order mark and quoted commas",
			input: "\ufeffproduct_id,product_description\n3,\"cable, usb-c\"\n",
			want:  []recommend.Product{{ID: 3, Description: "cable, usb-c"}},
		},
		{
			name:    "missing description column",
			input:   "product_id\n1\n",
			wantErr: recommend.ErrMissingColumns,
		},
		{
			name:    "header only",
			input:   "product_id,product_description\n",
			wantErr: recommend.ErrEmptyDataset,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: recommend.ErrEmptyDataset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadProducts("products.csv", strings.NewReader(tt.input))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ReadProducts() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadProducts() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ReadProducts() = %+v, want %+v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ReadProducts()[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestReadProducts_BadID(t *testing.T) {
	t.Parallel()

	_, err := ReadProducts("products.csv", strings.NewReader("product_id,product_description\n1,ok\nabc,bad\n"))
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("ReadProducts() error = %v, want *RowError", err)
	}
	if rowErr.Line != 3 || rowErr.Column != ColumnProductID {
		t.Errorf("RowError = %+v, want line 3 column %s", rowErr, ColumnProductID)
	}
	if !strings.Contains(rowErr.Error(), "products.csv line 3") {
		t.Errorf("RowError.Error() = %q", rowErr.Error())
	}
}

func TestReadInteractions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantErr   error
		wantRow   bool
		wantValue float64
	}{
		{
			name:      "basic",
			input:     "user_id,product_id,interaction\n1,1,5\n1,2,3\n2,3,4\n",
			wantLen:   3,
			wantValue: 5,
		},
		{
			name:      "fractional value",
			input:     "interaction,user_id,product_id\n2.5,1,1\n",
			wantLen:   1,
			wantValue: 2.5,
		},
		{
			name:    "missing interaction column",
			input:   "user_id,product_id\n1,1\n",
			wantErr: recommend.ErrMissingColumns,
		},
		{
			name:    "negative value",
			input:   "user_id,product_id,interaction\n1,1,-2\n",
			wantErr: recommend.ErrInvalidInteraction,
			wantRow: true,
		},
		{
			name:    "non-numeric value",
			input:   "user_id,product_id,interaction\n1,1,lots\n",
			wantRow: true,
		},
		{
			name:    "non-integer user",
			input:   "user_id,product_id,interaction\nu1,1,1\n",
			wantRow: true,
		},
		{
			name:    "header only",
			input:   "user_id,product_id,interaction\n",
			wantErr: recommend.ErrEmptyDataset,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ReadInteractions("user_interactions.csv", strings.NewReader(tt.input))
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadInteractions() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantRow {
				var rowErr *RowError
				if !errors.As(err, &rowErr) {
					t.Fatalf("ReadInteractions() error = %v, want *RowError", err)
				}
			}
			if tt.wantErr != nil || tt.wantRow {
				return
			}
			if err != nil {
				t.Fatalf("ReadInteractions() error = %v", err)
			}
			if len(got) != tt.wantLen {
				t.Fatalf("ReadInteractions() returned %d rows, want %d", len(got), tt.wantLen)
			}
			if got[0].Value != tt.wantValue {
				t.Errorf("first value = %v, want %v", got[0].Value, tt.wantValue)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	products := writeFile(t, dir, "products.csv",
		"product_id,product_description\n1,Product A\n2,Product B\n3,Product C\n")
	interactions := writeFile(t, dir, "user_interactions.csv",
		"user_id,product_id,interaction\n7,1,5\n3,2,3\n7,3,4\n")

	d, err := Load(products, interactions)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(d.Products()) != 3 || len(d.Interactions()) != 3 {
		t.Errorf("Load() products=%d interactions=%d", len(d.Products()), len(d.Interactions()))
	}

	ids := d.UserIDs()
	if len(ids) != 2 || ids[0] != 7 || ids[1] != 3 {
		t.Errorf("UserIDs() = %v, want [7 3]", ids)
	}

	rows, ok := d.UserInteractions(7)
	if !ok || len(rows) != 2 || rows[0].ProductID != 1 || rows[1].ProductID != 3 {
		t.Errorf("UserInteractions(7) = %+v, %v", rows, ok)
	}
	if _, ok := d.UserInteractions(99); ok {
		t.Error("UserInteractions(99) reported a user that does not exist")
	}

	engine, err := d.Build(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if engine.Stats().Users != 2 {
		t.Errorf("engine users = %d, want 2", engine.Stats().Users)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	goodProducts := writeFile(t, dir, "products.csv", "product_id,product_description\n1,A\n")
	goodInteractions := writeFile(t, dir, "interactions.csv", "user_id,product_id,interaction\n1,1,1\n")
	idOnly := writeFile(t, dir, "ids.csv", "product_id\n1\n")

	tests := []struct {
		name         string
		products     string
		interactions string
		wantErr      error
	}{
		{"missing products file", filepath.Join(dir, "nope.csv"), goodInteractions, os.ErrNotExist},
		{"missing interactions file", goodProducts, filepath.Join(dir, "nope.csv"), os.ErrNotExist},
		{"products without description", idOnly, goodInteractions, recommend.ErrMissingColumns},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(tt.products, tt.interactions); !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, []recommend.Interaction{{UserID: 1, ProductID: 1, Value: 1}}); !errors.Is(err, recommend.ErrEmptyDataset) {
		t.Errorf("New() error = %v, want ErrEmptyDataset", err)
	}
	if _, err := New([]recommend.Product{{ID: 1}}, nil); !errors.Is(err, recommend.ErrEmptyDataset) {
		t.Errorf("New() error = %v, want ErrEmptyDataset", err)
	}
}
