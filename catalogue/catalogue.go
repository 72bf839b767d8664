// SPDX-License-Identifier: MIT
// Package catalogue: read-only lookup over archetype tables.

package catalogue

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loadprofile/mixture"
)

// Archetype is a household demand category tag.
type Archetype string

// String implements fmt.Stringer.
func (a Archetype) String() string { return string(a) }

// Entry is one catalogue row: a tag and its ordered component table.
type Entry struct {
	Archetype  Archetype        `yaml:"archetype"`
	Components []mixture.Params `yaml:"components"`
}

// Catalogue is an immutable, versioned set of archetype tables.
// All methods are safe for concurrent use.
type Catalogue struct {
	version string
	order   []Archetype
	tables  map[Archetype][]mixture.Params
}

// Default returns the built-in catalogue.
func Default() *Catalogue { return std }

// New validates and freezes a catalogue. Entry order is the canonical order
// reported by Archetypes. Errors wrap ErrDuplicateArchetype or
// ErrInvalidTable (which in turn wraps the mixture sentinel).
func New(version string, entries ...Entry) (*Catalogue, error) {
	c := &Catalogue{
		version: version,
		order:   make([]Archetype, 0, len(entries)),
		tables:  make(map[Archetype][]mixture.Params, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.tables[e.Archetype]; dup {
			return nil, fmt.Errorf("New: %q: %w", e.Archetype, ErrDuplicateArchetype)
		}
		if _, err := mixture.FromParams(e.Components); err != nil {
			return nil, fmt.Errorf("New: %q: %w: %w", e.Archetype, ErrInvalidTable, err)
		}
		table := make([]mixture.Params, len(e.Components))
		copy(table, e.Components)
		c.tables[e.Archetype] = table
		c.order = append(c.order, e.Archetype)
	}

	return c, nil
}

// Version returns the calibration version.
func (c *Catalogue) Version() string { return c.version }

// Archetypes returns the tags in canonical order.
func (c *Catalogue) Archetypes() []Archetype {
	out := make([]Archetype, len(c.order))
	copy(out, c.order)

	return out
}

// Get returns a copy of the ordered parameter table for tag.
func (c *Catalogue) Get(tag Archetype) ([]mixture.Params, error) {
	table, ok := c.tables[tag]
	if !ok {
		return nil, fmt.Errorf("Get(%q): %w", tag, ErrUnknownArchetype)
	}
	out := make([]mixture.Params, len(table))
	copy(out, table)

	return out, nil
}

// Distribution builds the mixture for tag.
func (c *Catalogue) Distribution(tag Archetype) (*mixture.Distribution, error) {
	table, ok := c.tables[tag]
	if !ok {
		return nil, fmt.Errorf("Distribution(%q): %w", tag, ErrUnknownArchetype)
	}

	return mixture.FromParams(table)
}

// Lookup resolves a user-supplied name to a tag, ignoring case.
func (c *Catalogue) Lookup(name string) (Archetype, error) {
	for _, a := range c.order {
		if strings.EqualFold(string(a), strings.TrimSpace(name)) {
			return a, nil
		}
	}

	return "", fmt.Errorf("Lookup(%q): %w", name, ErrUnknownArchetype)
}

// document is the YAML shape of a catalogue dump.
type document struct {
	Version    string  `yaml:"version"`
	Archetypes []Entry `yaml:"archetypes"`
}

// WriteYAML dumps the catalogue, in canonical order, as YAML.
func (c *Catalogue) WriteYAML(w io.Writer) error {
	doc := document{Version: c.version, Archetypes: make([]Entry, 0, len(c.order))}
	for _, a := range c.order {
		doc.Archetypes = append(doc.Archetypes, Entry{Archetype: a, Components: c.tables[a]})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("WriteYAML: %w", err)
	}

	return enc.Close()
}

// ReadYAML parses a catalogue dump produced by WriteYAML and validates it
// through New. Unknown keys and undecodable documents are ErrInvalidTable.
func ReadYAML(r io.Reader) (*Catalogue, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("ReadYAML: %w: %w", ErrInvalidTable, err)
	}

	return New(doc.Version, doc.Archetypes...)
}
