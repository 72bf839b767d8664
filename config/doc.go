// Package config holds the YAML run configuration of the loadprofile command:
// the sampling grid, the archetype selection, the output format, the log
// level and forecast settings.
//
// Default() reproduces the canonical run: the 48-point half-hour day grid,
// every built-in archetype, CSV output at info level, and a one-day
// seasonal-naive forecast. Load(path) overlays a YAML file on Default() and
// validates the result, so a file only needs the keys it changes:
//
//	grid:
//	  length: 24
//	  step: 2
//	archetypes: [Affluent, AcornU]
//	format: yaml
//
// Unknown keys are rejected. Every validation failure wraps ErrInvalidConfig.
package config
