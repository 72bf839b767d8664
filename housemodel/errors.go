// SPDX-License-Identifier: MIT
// Package housemodel: sentinel errors.

package housemodel

import (
	"errors"

	"github.com/katalvlaran/loadprofile/timegrid"
)

var (
	// ErrInvalidGrid indicates Compute was given an empty grid or a grid with
	// NaN/±Inf points. It is the same sentinel as timegrid.ErrInvalidGrid.
	ErrInvalidGrid = timegrid.ErrInvalidGrid

	// ErrNilDistribution indicates New was given a nil distribution.
	ErrNilDistribution = errors.New("housemodel: nil distribution")

	// ErrNotComputed indicates a profile was requested before Compute succeeded.
	ErrNotComputed = errors.New("housemodel: profile not computed")

	// ErrNonFiniteProfile indicates the mixture overflowed on the grid. The
	// profile is rejected rather than stored with ±Inf entries.
	ErrNonFiniteProfile = errors.New("housemodel: non-finite profile value")
)
