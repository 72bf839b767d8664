// SPDX-License-Identifier: MIT
// Package housemodel: descriptive statistics over a computed profile.

package housemodel

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape of a computed profile.
type Summary struct {
	Points      int     `yaml:"points" json:"points"`
	PeakIndex   int     `yaml:"peak_index" json:"peak_index"`
	PeakT       float64 `yaml:"peak_t" json:"peak_t"`
	PeakValue   float64 `yaml:"peak_value" json:"peak_value"`
	TroughIndex int     `yaml:"trough_index" json:"trough_index"`
	TroughT     float64 `yaml:"trough_t" json:"trough_t"`
	TroughValue float64 `yaml:"trough_value" json:"trough_value"`
	Mean        float64 `yaml:"mean" json:"mean"`
	StdDev      float64 `yaml:"stddev" json:"stddev"`
	Total       float64 `yaml:"total" json:"total"`
}

// Summary computes descriptive statistics of the stored profile. Ties
// resolve to the first index. StdDev is the sample standard deviation
// (0 for a single point).
func (m *HouseModel) Summary() (Summary, error) {
	if m.profile == nil {
		return Summary{}, fmt.Errorf("Summary(%s): %w", m.archetype, ErrNotComputed)
	}
	vals := m.Values()

	peak := floats.MaxIdx(vals)
	trough := floats.MinIdx(vals)
	s := Summary{
		Points:      len(vals),
		PeakIndex:   peak,
		PeakT:       m.profile[peak].T,
		PeakValue:   vals[peak],
		TroughIndex: trough,
		TroughT:     m.profile[trough].T,
		TroughValue: vals[trough],
		Total:       floats.Sum(vals),
	}
	if len(vals) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	} else {
		s.Mean = vals[0]
	}

	return s, nil
}
