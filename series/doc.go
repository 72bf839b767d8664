// Package series defines the two-column, time-ordered table that profiles
// are handed to forecasting consumers in.
//
// Schema (fixed):
//
//	index  float64  // grid point or time offset, strictly increasing
//	value  float64  // finite demand intensity
//
// One row per grid point, in grid order. Tables built through New are
// always valid; Validate re-checks tables that were decoded or assembled
// by hand. CSV, YAML and JSON encodings are provided for the CLI and for
// external consumers.
package series
