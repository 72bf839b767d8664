// SPDX-License-Identifier: MIT
// Package series: table type and validation.

package series

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Column names of the fixed schema.
const (
	ColumnIndex = "index"
	ColumnValue = "value"
)

// Row is one (index, value) pair.
type Row struct {
	Index float64 `yaml:"index" json:"index"`
	Value float64 `yaml:"value" json:"value"`
}

// Table is a named, time-ordered two-column table.
type Table struct {
	Name string `yaml:"name" json:"name"`
	Rows []Row  `yaml:"rows" json:"rows"`
}

// New zips index and value columns into a validated Table. The input
// slices are copied.
func New(name string, index, values []float64) (Table, error) {
	if len(index) != len(values) {
		return Table{}, fmt.Errorf("New(%q): %d indices, %d values: %w",
			name, len(index), len(values), ErrLengthMismatch)
	}
	t := Table{Name: name, Rows: make([]Row, len(index))}
	for i := range index {
		t.Rows[i] = Row{Index: index[i], Value: values[i]}
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

// Validate checks the handoff contract: at least one row, finite entries,
// strictly increasing index.
func (t Table) Validate() error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("table %q: %w", t.Name, ErrEmptyTable)
	}
	for i, r := range t.Rows {
		if !isFinite(r.Index) || !isFinite(r.Value) {
			return fmt.Errorf("table %q row %d (%v, %v): %w", t.Name, i, r.Index, r.Value, ErrNonFinite)
		}
		if i > 0 && r.Index <= t.Rows[i-1].Index {
			return fmt.Errorf("table %q row %d: index %v after %v: %w",
				t.Name, i, r.Index, t.Rows[i-1].Index, ErrUnordered)
		}
	}

	return nil
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Indices returns a copy of the index column.
func (t Table) Indices() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Index
	}

	return out
}

// Values returns a copy of the value column.
func (t Table) Values() []float64 {
	out := make([]float64, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r.Value
	}

	return out
}

// Last returns the final row. The table must not be empty.
func (t Table) Last() Row { return t.Rows[len(t.Rows)-1] }

// Step returns the spacing between the last two indices, or 1 for a
// single-row table.
func (t Table) Step() float64 {
	if len(t.Rows) < 2 {
		return 1
	}

	return t.Rows[len(t.Rows)-1].Index - t.Rows[len(t.Rows)-2].Index
}

// Vector returns the value column as a gonum vector.
func (t Table) Vector() *mat.VecDense {
	if len(t.Rows) == 0 {
		return nil
	}

	return mat.NewVecDense(len(t.Rows), t.Values())
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
