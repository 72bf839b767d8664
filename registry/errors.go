// SPDX-License-Identifier: MIT
// Package registry: sentinel errors.

package registry

import "errors"

var (
	// ErrDuplicateArchetype indicates WithArchetypes listed a tag twice.
	ErrDuplicateArchetype = errors.New("registry: duplicate archetype")

	// ErrNoArchetypes indicates an empty archetype selection.
	ErrNoArchetypes = errors.New("registry: no archetypes selected")
)
