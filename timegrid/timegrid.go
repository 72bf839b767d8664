// SPDX-License-Identifier: MIT
// Package timegrid: grid generators.

package timegrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DayLength is the number of half-hour slots in a day and the size of the
// canonical grid.
const DayLength = 48

// day is the canonical grid, computed once and never mutated.
var day = mustSpan(0, DayLength-1, DayLength)

// Default returns a copy of the canonical half-hour day grid 0, 1, …, 47.
func Default() []float64 {
	out := make([]float64, len(day))
	copy(out, day)

	return out
}

// Hourly returns the 24-point grid 0, 2, …, 46: the same day on the
// half-hour axis at hourly resolution.
func Hourly() []float64 {
	g, _ := New(DayLength/2, WithStep(2))

	return g
}

// New returns n points start, start+step, …, start+(n-1)*step.
// Defaults: start=DefaultStart, step=DefaultStep.
// Returns ErrInvalidGrid if n < 1 or the last point overflows.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("New: length must be >= 1, got %d: %w", n, ErrInvalidGrid)
	}
	cfg := gatherOptions(opts...)

	out := make([]float64, n)
	for i := range out {
		out[i] = cfg.start + cfg.step*float64(i)
	}
	if last := out[n-1]; math.IsInf(last, 0) {
		return nil, fmt.Errorf("New: grid overflows at point %d: %w", n-1, ErrInvalidGrid)
	}

	return out, nil
}

// Span returns n evenly spaced points from start to end inclusive.
// Requires n >= 2, finite bounds and end > start; otherwise ErrInvalidGrid.
func Span(start, end float64, n int) ([]float64, error) {
	switch {
	case n < 2:
		return nil, fmt.Errorf("Span: need at least 2 points, got %d: %w", n, ErrInvalidGrid)
	case !isFinite(start) || !isFinite(end):
		return nil, fmt.Errorf("Span: bounds must be finite, got [%v, %v]: %w", start, end, ErrInvalidGrid)
	case end <= start:
		return nil, fmt.Errorf("Span: end must exceed start, got [%v, %v]: %w", start, end, ErrInvalidGrid)
	}

	return floats.Span(make([]float64, n), start, end), nil
}

// Validate reports ErrInvalidGrid if points is empty or holds NaN/±Inf.
// Order is not checked: any finite ordering is well defined for sampling.
func Validate(points []float64) error {
	if len(points) == 0 {
		return fmt.Errorf("grid is empty: %w", ErrInvalidGrid)
	}
	for i, p := range points {
		if !isFinite(p) {
			return fmt.Errorf("grid point %d is %v: %w", i, p, ErrInvalidGrid)
		}
	}

	return nil
}

func mustSpan(start, end float64, n int) []float64 {
	g, err := Span(start, end, n)
	if err != nil {
		panic(err)
	}

	return g
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
