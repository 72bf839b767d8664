// SPDX-License-Identifier: MIT
// Package catalogue: built-in archetype tables.
//
// Means and standard deviations are on the half-hour axis (slot 0 = 00:00,
// slot 47 = 23:30). Weights are relative intensities and intentionally do
// not sum to 1 for every archetype; they are used raw.

package catalogue

import "github.com/katalvlaran/loadprofile/mixture"

// Version identifies the calibration run the built-in tables come from.
const Version = "acorn-halfhour-2014.1"

// Archetype tags of the built-in catalogue.
const (
	AcornU      Archetype = "AcornU"
	Adversity   Archetype = "Adversity"
	Affluent    Archetype = "Affluent"
	Comfortable Archetype = "Comfortable"
)

// builtin lists the built-in tables in canonical order.
var builtin = []Entry{
	{
		Archetype: AcornU,
		Components: []mixture.Params{
			{Weight: 0.22, Mean: 15.0, StdDev: 2.5}, // morning
			{Weight: 0.30, Mean: 26.0, StdDev: 9.0}, // daytime base
			{Weight: 0.48, Mean: 37.0, StdDev: 3.5}, // evening
		},
	},
	{
		Archetype: Adversity,
		Components: []mixture.Params{
			{Weight: 0.18, Mean: 16.0, StdDev: 3.0},
			{Weight: 0.38, Mean: 24.0, StdDev: 10.0},
			{Weight: 0.44, Mean: 36.0, StdDev: 4.0},
		},
	},
	{
		Archetype: Affluent,
		Components: []mixture.Params{
			{Weight: 0.10, Mean: 2.0, StdDev: 3.0}, // overnight loads
			{Weight: 0.25, Mean: 14.0, StdDev: 2.0},
			{Weight: 0.20, Mean: 27.0, StdDev: 7.5},
			{Weight: 0.55, Mean: 38.0, StdDev: 3.0},
		},
	},
	{
		Archetype: Comfortable,
		Components: []mixture.Params{
			{Weight: 0.24, Mean: 15.0, StdDev: 2.5},
			{Weight: 0.26, Mean: 25.0, StdDev: 8.0},
			{Weight: 0.50, Mean: 37.5, StdDev: 3.2},
		},
	},
}

// std is the built-in catalogue. A table that fails validation is a build
// defect, so it panics at init rather than at first use.
var std = mustNew(Version, builtin...)

func mustNew(version string, entries ...Entry) *Catalogue {
	c, err := New(version, entries...)
	if err != nil {
		panic(err)
	}

	return c
}
