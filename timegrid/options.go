// SPDX-License-Identifier: MIT
// Package timegrid: functional options for New.
//
// Option constructors panic on meaningless values (programmer error);
// New itself never panics.

package timegrid

import "math"

const (
	// DefaultStart is the first grid point when WithStart is not given.
	DefaultStart = 0.0
	// DefaultStep is the spacing between grid points when WithStep is not given.
	DefaultStep = 1.0
)

const (
	panicStartInvalid = "timegrid: WithStart: start must be finite"
	panicStepInvalid  = "timegrid: WithStep: step must be finite and > 0"
)

// Option mutates the grid generator configuration.
type Option func(*config)

type config struct {
	start float64
	step  float64
}

// WithStart sets the first grid point. Panics on NaN/±Inf.
func WithStart(start float64) Option {
	if math.IsNaN(start) || math.IsInf(start, 0) {
		panic(panicStartInvalid)
	}

	return func(c *config) { c.start = start }
}

// WithStep sets the spacing between consecutive points. Panics unless
// step is finite and strictly positive.
func WithStep(step float64) Option {
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		panic(panicStepInvalid)
	}

	return func(c *config) { c.step = step }
}

func gatherOptions(opts ...Option) config {
	cfg := config{start: DefaultStart, step: DefaultStep}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
