// SPDX-License-Identifier: MIT
// Package mixture: single weighted Gaussian term.

package mixture

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Component is one weighted normal density term. The zero value is not
// usable; build Components with NewComponent or ComponentFrom.
type Component struct {
	weight float64
	normal distuv.Normal
}

// NewComponent validates (weight, mean, stddev) and returns the term.
//
// Validation (first failure wins):
//   - all three values finite;
//   - stddev > 0;
//   - weight >= 0.
//
// Values are never clamped. On failure the error wraps ErrInvalidParameter.
func NewComponent(weight, mean, stddev float64) (Component, error) {
	switch {
	case !isFinite(weight) || !isFinite(mean) || !isFinite(stddev):
		return Component{}, fmt.Errorf("NewComponent(w=%v, μ=%v, σ=%v): non-finite value: %w",
			weight, mean, stddev, ErrInvalidParameter)
	case stddev <= 0:
		return Component{}, fmt.Errorf("NewComponent: stddev must be > 0, got %v: %w", stddev, ErrInvalidParameter)
	case weight < 0:
		return Component{}, fmt.Errorf("NewComponent: weight must be >= 0, got %v: %w", weight, ErrInvalidParameter)
	}

	return Component{
		weight: weight,
		normal: distuv.Normal{Mu: mean, Sigma: stddev},
	}, nil
}

// ComponentFrom is NewComponent over a Params bundle.
func ComponentFrom(p Params) (Component, error) {
	return NewComponent(p.Weight, p.Mean, p.StdDev)
}

// Weight returns the (unnormalized) weight w.
func (c Component) Weight() float64 { return c.weight }

// Mean returns μ.
func (c Component) Mean() float64 { return c.normal.Mu }

// StdDev returns σ.
func (c Component) StdDev() float64 { return c.normal.Sigma }

// Params returns the parameter triple of c.
func (c Component) Params() Params {
	return Params{Weight: c.weight, Mean: c.normal.Mu, StdDev: c.normal.Sigma}
}

// Density returns w * N(x; μ, σ). Result is >= 0 for every finite x.
// x is standardized before evaluation so a tiny σ cannot square to 0.
func (c Component) Density(x float64) float64 {
	if c.weight == 0 {
		return 0
	}
	z := (x - c.normal.Mu) / c.normal.Sigma

	return c.weight * distuv.UnitNormal.Prob(z) / c.normal.Sigma
}

// String implements fmt.Stringer.
func (c Component) String() string {
	return fmt.Sprintf("%g·N(%g, %g)", c.weight, c.normal.Mu, c.normal.Sigma)
}

// valid reports whether c went through NewComponent.
func (c Component) valid() bool {
	return c.normal.Sigma > 0 && c.weight >= 0 && isFinite(c.weight) &&
		isFinite(c.normal.Mu) && isFinite(c.normal.Sigma)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
