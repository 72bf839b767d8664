// SPDX-License-Identifier: MIT
// Package forecast: Forecaster boundary and seasonal-naive baseline.

package forecast

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/loadprofile/series"
	"github.com/katalvlaran/loadprofile/timegrid"
)

// Forecaster is the contract profiles are handed to.
type Forecaster interface {
	// Train fits the model on a validated, time-ordered table.
	Train(t series.Table) error
	// Forecast returns n rows continuing the training index.
	Forecast(n int) (series.Table, error)
}

// Option configures a SeasonalNaive.
type Option func(*SeasonalNaive)

// WithSeason sets the season length in rows. Panics if season < 1.
func WithSeason(season int) Option {
	if season < 1 {
		panic("forecast: WithSeason(season<1)")
	}

	return func(s *SeasonalNaive) { s.season = season }
}

// WithLogger attaches a structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *SeasonalNaive) { s.log = l }
}

// SeasonalNaive forecasts y[t+h] = y[t+h-season], i.e. it replays the last
// observed season. Default season is timegrid.DayLength.
type SeasonalNaive struct {
	season int
	log    zerolog.Logger

	name      string
	pattern   []float64
	lastIndex float64
	step      float64
}

var _ Forecaster = (*SeasonalNaive)(nil)

// NewSeasonalNaive returns an untrained model.
func NewSeasonalNaive(opts ...Option) *SeasonalNaive {
	s := &SeasonalNaive{season: timegrid.DayLength, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Season returns the configured season length.
func (s *SeasonalNaive) Season() int { return s.season }

// Train keeps the last season of t and remembers where t ends.
// A failed Train leaves the previous fit in place.
func (s *SeasonalNaive) Train(t series.Table) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("Train: %w", err)
	}
	if t.Len() < s.season {
		return fmt.Errorf("Train(%q): %d rows, season %d: %w", t.Name, t.Len(), s.season, ErrShortHistory)
	}

	vals := t.Values()
	s.pattern = vals[len(vals)-s.season:]
	s.lastIndex = t.Last().Index
	s.step = t.Step()
	s.name = t.Name

	s.log.Debug().
		Str("table", t.Name).
		Int("rows", t.Len()).
		Int("season", s.season).
		Float64("end_index", s.lastIndex).
		Msg("seasonal naive trained")

	return nil
}

// Forecast returns n rows named "<training name>/forecast".
func (s *SeasonalNaive) Forecast(n int) (series.Table, error) {
	if s.pattern == nil {
		return series.Table{}, fmt.Errorf("Forecast: %w", ErrNotTrained)
	}
	if n < 1 {
		return series.Table{}, fmt.Errorf("Forecast(%d): %w", n, ErrBadSteps)
	}

	idx := make([]float64, n)
	vals := make([]float64, n)
	for h := 0; h < n; h++ {
		idx[h] = s.lastIndex + s.step*float64(h+1)
		vals[h] = s.pattern[h%s.season]
	}

	s.log.Debug().Str("table", s.name).Int("steps", n).Msg("seasonal naive forecast")

	return series.New(s.name+"/forecast", idx, vals)
}
