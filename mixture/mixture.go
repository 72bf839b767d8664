// SPDX-License-Identifier: MIT
// Package mixture: ordered superposition of Components.

package mixture

import (
	"fmt"
	"strings"
)

// Distribution is an immutable, ordered collection of Components.
// Insertion order is preserved for reproducibility; it does not affect the
// value of Evaluate beyond floating-point summation order, which is fixed.
type Distribution struct {
	components []Component
}

// New builds a Distribution from validated components, in the given order.
// Returns ErrEmptyMixture for zero components and ErrInvalidParameter if a
// zero-value Component slipped in.
func New(components ...Component) (*Distribution, error) {
	if len(components) == 0 {
		return nil, fmt.Errorf("New: %w", ErrEmptyMixture)
	}
	for i, c := range components {
		if !c.valid() {
			return nil, fmt.Errorf("New: component %d was not built by NewComponent: %w", i, ErrInvalidParameter)
		}
	}

	cs := make([]Component, len(components))
	copy(cs, components)

	return &Distribution{components: cs}, nil
}

// FromParams validates every Params entry and builds the Distribution.
// The first invalid entry aborts construction; nothing partial is returned.
func FromParams(params []Params) (*Distribution, error) {
	if len(params) == 0 {
		return nil, fmt.Errorf("FromParams: %w", ErrEmptyMixture)
	}

	cs := make([]Component, 0, len(params))
	for i, p := range params {
		c, err := ComponentFrom(p)
		if err != nil {
			return nil, fmt.Errorf("FromParams: entry %d: %w", i, err)
		}
		cs = append(cs, c)
	}

	return &Distribution{components: cs}, nil
}

// Evaluate returns Σ component.Density(x) in insertion order.
// Pure and deterministic; O(k).
func (d *Distribution) Evaluate(x float64) float64 {
	var sum float64
	for _, c := range d.components {
		sum += c.Density(x)
	}

	return sum
}

// EvaluateAll evaluates d at every x, preserving order. O(n·k).
func (d *Distribution) EvaluateAll(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = d.Evaluate(x)
	}

	return out
}

// Len returns the number of components.
func (d *Distribution) Len() int { return len(d.components) }

// Components returns a copy of the components in insertion order.
func (d *Distribution) Components() []Component {
	out := make([]Component, len(d.components))
	copy(out, d.components)

	return out
}

// Params returns the parameter table of d in insertion order.
func (d *Distribution) Params() []Params {
	out := make([]Params, len(d.components))
	for i, c := range d.components {
		out[i] = c.Params()
	}

	return out
}

// TotalWeight returns Σw. It is reported, never used to normalize.
func (d *Distribution) TotalWeight() float64 {
	var sum float64
	for _, c := range d.components {
		sum += c.weight
	}

	return sum
}

// String implements fmt.Stringer.
func (d *Distribution) String() string {
	parts := make([]string, len(d.components))
	for i, c := range d.components {
		parts[i] = c.String()
	}

	return strings.Join(parts, " + ")
}
