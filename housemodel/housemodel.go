// SPDX-License-Identifier: MIT
// Package housemodel: HouseModel and day-profile computation.

package housemodel

import (
	"fmt"
	"math"

	"github.com/katalvlaran/loadprofile/catalogue"
	"github.com/katalvlaran/loadprofile/mixture"
	"github.com/katalvlaran/loadprofile/series"
	"github.com/katalvlaran/loadprofile/timegrid"
)

// Point is one profile sample.
type Point struct {
	T     float64 `yaml:"t" json:"t"`
	Value float64 `yaml:"value" json:"value"`
}

// HouseModel is one archetype's mixture plus its most recent profile.
type HouseModel struct {
	archetype    catalogue.Archetype
	distribution *mixture.Distribution
	profile      []Point
}

// New binds tag to dist. The profile starts empty.
func New(tag catalogue.Archetype, dist *mixture.Distribution) (*HouseModel, error) {
	if dist == nil {
		return nil, fmt.Errorf("New(%q): %w", tag, ErrNilDistribution)
	}

	return &HouseModel{archetype: tag, distribution: dist}, nil
}

// FromCatalogue builds the model for tag from cat's table.
func FromCatalogue(cat *catalogue.Catalogue, tag catalogue.Archetype) (*HouseModel, error) {
	dist, err := cat.Distribution(tag)
	if err != nil {
		return nil, err
	}

	return New(tag, dist)
}

// Archetype returns the model's tag.
func (m *HouseModel) Archetype() catalogue.Archetype { return m.archetype }

// Distribution returns the model's mixture.
func (m *HouseModel) Distribution() *mixture.Distribution { return m.distribution }

// Compute samples the mixture at every grid point, in grid order, stores
// the result as the profile and returns a copy of it.
//
// Errors (profile left untouched):
//   - ErrInvalidGrid: grid empty or holding NaN/±Inf;
//   - ErrNonFiniteProfile: a sample overflowed.
//
// Complexity: O(len(grid) · components).
func (m *HouseModel) Compute(grid []float64) ([]Point, error) {
	if err := timegrid.Validate(grid); err != nil {
		return nil, fmt.Errorf("Compute(%s): %w", m.archetype, err)
	}

	next := make([]Point, len(grid))
	for i, t := range grid {
		v := m.distribution.Evaluate(t)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Compute(%s): t=%v: %w", m.archetype, t, ErrNonFiniteProfile)
		}
		next[i] = Point{T: t, Value: v}
	}
	m.profile = next

	return m.Profile(), nil
}

// Computed reports whether a profile is stored.
func (m *HouseModel) Computed() bool { return m.profile != nil }

// Profile returns a copy of the stored profile, or nil before Compute.
func (m *HouseModel) Profile() []Point {
	if m.profile == nil {
		return nil
	}
	out := make([]Point, len(m.profile))
	copy(out, m.profile)

	return out
}

// Values returns the value column of the stored profile, or nil.
func (m *HouseModel) Values() []float64 {
	if m.profile == nil {
		return nil
	}
	out := make([]float64, len(m.profile))
	for i, p := range m.profile {
		out[i] = p.Value
	}

	return out
}

// Table returns the profile as the forecasting handoff table named after
// the archetype. The grid must have been strictly increasing; otherwise
// series.ErrUnordered is returned.
func (m *HouseModel) Table() (series.Table, error) {
	if m.profile == nil {
		return series.Table{}, fmt.Errorf("Table(%s): %w", m.archetype, ErrNotComputed)
	}
	idx := make([]float64, len(m.profile))
	vals := make([]float64, len(m.profile))
	for i, p := range m.profile {
		idx[i], vals[i] = p.T, p.Value
	}

	return series.New(string(m.archetype), idx, vals)
}
