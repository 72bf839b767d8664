// SPDX-License-Identifier: MIT
// Package mixture: sentinel error set.
//
// Callers MUST branch with errors.Is; returned errors carry parameter context
// via %w wrapping.

package mixture

import "errors"

var (
	// ErrInvalidParameter indicates a component with stddev <= 0, weight < 0,
	// or a NaN/±Inf weight, mean or stddev.
	ErrInvalidParameter = errors.New("mixture: invalid parameter")

	// ErrEmptyMixture indicates a distribution built from zero components.
	ErrEmptyMixture = errors.New("mixture: no components")
)
