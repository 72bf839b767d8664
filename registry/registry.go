// SPDX-License-Identifier: MIT
// Package registry: construction and read-only access.

package registry

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/loadprofile/catalogue"
	"github.com/katalvlaran/loadprofile/dtw"
	"github.com/katalvlaran/loadprofile/housemodel"
	"github.com/katalvlaran/loadprofile/series"
	"github.com/katalvlaran/loadprofile/timegrid"
)

// Registry owns one computed HouseModel per archetype.
type Registry struct {
	version string
	grid    []float64
	order   []catalogue.Archetype
	models  map[catalogue.Archetype]*housemodel.HouseModel
}

// New builds and computes a model per archetype on grid.
//
// Errors: timegrid.ErrInvalidGrid for a bad grid, catalogue.ErrUnknownArchetype
// for a tag outside the catalogue, ErrNoArchetypes or ErrDuplicateArchetype
// for a bad selection, and whatever housemodel.Compute reports.
func New(grid []float64, opts ...Option) (*Registry, error) {
	cfg := gatherOptions(opts...)
	if err := timegrid.Validate(grid); err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	if len(cfg.archetypes) == 0 {
		return nil, ErrNoArchetypes
	}

	g := make([]float64, len(grid))
	copy(g, grid)
	r := &Registry{
		version: cfg.cat.Version(),
		grid:    g,
		order:   make([]catalogue.Archetype, 0, len(cfg.archetypes)),
		models:  make(map[catalogue.Archetype]*housemodel.HouseModel, len(cfg.archetypes)),
	}
	elapsed := make([]time.Duration, 0, len(cfg.archetypes))

	for _, tag := range cfg.archetypes {
		if _, dup := r.models[tag]; dup {
			return nil, fmt.Errorf("registry: %q: %w", tag, ErrDuplicateArchetype)
		}
		model, err := housemodel.FromCatalogue(cfg.cat, tag)
		if err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}

		start := time.Now()
		if _, err := model.Compute(r.grid); err != nil {
			return nil, fmt.Errorf("registry: %w", err)
		}
		took := time.Since(start)

		s, _ := model.Summary()
		cfg.log.Debug().
			Str("archetype", string(tag)).
			Int("points", len(r.grid)).
			Int("components", model.Distribution().Len()).
			Int("peak_index", s.PeakIndex).
			Float64("peak_value", s.PeakValue).
			Dur("elapsed", took).
			Msg("profile computed")

		r.models[tag] = model
		r.order = append(r.order, tag)
		elapsed = append(elapsed, took)
	}

	// Collectors are registered and fed only once every archetype has computed.
	m, err := newMetrics(cfg.reg)
	if err != nil {
		return nil, fmt.Errorf("registry: metrics: %w", err)
	}
	for i, tag := range r.order {
		m.observe(string(tag), len(r.grid), elapsed[i])
	}

	cfg.log.Info().
		Str("catalogue", r.version).
		Int("archetypes", len(r.order)).
		Int("points", len(r.grid)).
		Msg("registry ready")

	return r, nil
}

// Version returns the catalogue version the profiles were computed from.
func (r *Registry) Version() string { return r.version }

// Archetypes returns the registered tags in construction order.
func (r *Registry) Archetypes() []catalogue.Archetype {
	out := make([]catalogue.Archetype, len(r.order))
	copy(out, r.order)

	return out
}

// Grid returns a copy of the grid every profile was computed on.
func (r *Registry) Grid() []float64 {
	out := make([]float64, len(r.grid))
	copy(out, r.grid)

	return out
}

func (r *Registry) model(tag catalogue.Archetype) (*housemodel.HouseModel, error) {
	m, ok := r.models[tag]
	if !ok {
		return nil, fmt.Errorf("registry: %q: %w", tag, catalogue.ErrUnknownArchetype)
	}

	return m, nil
}

// Profile returns a copy of tag's profile.
func (r *Registry) Profile(tag catalogue.Archetype) ([]housemodel.Point, error) {
	m, err := r.model(tag)
	if err != nil {
		return nil, err
	}

	return m.Profile(), nil
}

// Values returns tag's profile values in grid order.
func (r *Registry) Values(tag catalogue.Archetype) ([]float64, error) {
	m, err := r.model(tag)
	if err != nil {
		return nil, err
	}

	return m.Values(), nil
}

// Table returns tag's profile as a handoff table.
func (r *Registry) Table(tag catalogue.Archetype) (series.Table, error) {
	m, err := r.model(tag)
	if err != nil {
		return series.Table{}, err
	}

	return m.Table()
}

// Summary returns descriptive statistics of tag's profile.
func (r *Registry) Summary(tag catalogue.Archetype) (housemodel.Summary, error) {
	m, err := r.model(tag)
	if err != nil {
		return housemodel.Summary{}, err
	}

	return m.Summary()
}

// Matrix returns an archetypes x grid matrix: row i is the profile of
// Archetypes()[i]. The matrix is freshly allocated.
func (r *Registry) Matrix() *mat.Dense {
	out := mat.NewDense(len(r.order), len(r.grid), nil)
	for i, tag := range r.order {
		out.SetRow(i, r.models[tag].Values())
	}

	return out
}

// Distance returns the DTW distance between the profiles of a and b.
// A nil opts means dtw.DefaultOptions().
func (r *Registry) Distance(a, b catalogue.Archetype, opts *dtw.Options) (float64, error) {
	ma, err := r.model(a)
	if err != nil {
		return 0, err
	}
	mb, err := r.model(b)
	if err != nil {
		return 0, err
	}
	d, _, err := dtw.DTW(ma.Values(), mb.Values(), opts)
	if err != nil {
		return 0, fmt.Errorf("registry: distance %s/%s: %w", a, b, err)
	}

	return d, nil
}
