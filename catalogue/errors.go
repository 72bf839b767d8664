// SPDX-License-Identifier: MIT
// Package catalogue: sentinel errors.

package catalogue

import "errors"

var (
	// ErrUnknownArchetype indicates a lookup of a tag the catalogue does not define.
	ErrUnknownArchetype = errors.New("catalogue: unknown archetype")

	// ErrDuplicateArchetype indicates two tables registered under one tag.
	ErrDuplicateArchetype = errors.New("catalogue: duplicate archetype")

	// ErrInvalidTable indicates a table that does not build a valid mixture
	// (empty, or holding invalid parameters, in which case it also wraps the
	// mixture error) or a catalogue document that does not decode, including
	// one with unknown keys.
	ErrInvalidTable = errors.New("catalogue: invalid table")
)
