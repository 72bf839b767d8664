// SPDX-License-Identifier: MIT
// Package timegrid: sentinel errors.

package timegrid

import "errors"

// ErrInvalidGrid indicates an empty grid, a non-finite grid point, or
// generator parameters that cannot produce a well-defined grid.
var ErrInvalidGrid = errors.New("timegrid: invalid grid")
