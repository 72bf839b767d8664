// SPDX-License-Identifier: MIT
// Package commands: table rendering.

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/loadprofile/config"
	"github.com/katalvlaran/loadprofile/series"
)

// writeTables renders tables in format. A single CSV table is plain
// "index,value" CSV; several are each preceded by a "# name" line. YAML
// tables are separate documents and JSON tables form one array.
func writeTables(w io.Writer, format string, tables []series.Table) error {
	switch format {
	case config.FormatCSV:
		for i, t := range tables {
			if len(tables) > 1 {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "# %s\n", t.Name)
			}
			if err := t.WriteCSV(w); err != nil {
				return err
			}
		}
	case config.FormatYAML:
		for _, t := range tables {
			if len(tables) > 1 {
				fmt.Fprintln(w, "---")
			}
			if err := t.WriteYAML(w); err != nil {
				return err
			}
		}
	case config.FormatJSON:
		if len(tables) == 1 {
			return tables[0].WriteJSON(w)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tables); err != nil {
			return fmt.Errorf("failed to encode tables: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: %w", format, config.ErrInvalidConfig)
	}

	return nil
}
