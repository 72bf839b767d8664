// SPDX-License-Identifier: MIT
// Package series: CSV / YAML / JSON encodings.

package series

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// WriteCSV writes "index,value" followed by one line per row.
// Floats use the shortest representation that round-trips.
func (t Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnIndex, ColumnValue}); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, r := range t.Rows {
		rec := []string{
			strconv.FormatFloat(r.Index, 'g', -1, 64),
			strconv.FormatFloat(r.Value, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses a WriteCSV document and validates the result.
func ReadCSV(name string, r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	header, err := cr.Read()
	if err != nil {
		return Table{}, fmt.Errorf("ReadCSV(%q): %w", name, err)
	}
	if header[0] != ColumnIndex || header[1] != ColumnValue {
		return Table{}, fmt.Errorf("ReadCSV(%q): got %v: %w", name, header, ErrBadHeader)
	}

	t := Table{Name: name}
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("ReadCSV(%q): %w", name, err)
		}
		idx, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return Table{}, fmt.Errorf("ReadCSV(%q) line %d: %w", name, line, err)
		}
		val, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return Table{}, fmt.Errorf("ReadCSV(%q) line %d: %w", name, line, err)
		}
		t.Rows = append(t.Rows, Row{Index: idx, Value: val})
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

// WriteYAML encodes the table as a YAML document.
func (t Table) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// WriteJSON encodes the table as indented JSON.
func (t Table) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}

	return nil
}
