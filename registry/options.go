// SPDX-License-Identifier: MIT
// Package registry: functional options.

package registry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/loadprofile/catalogue"
)

// Option configures New.
type Option func(*config)

type config struct {
	cat        *catalogue.Catalogue
	archetypes []catalogue.Archetype
	log        zerolog.Logger
	reg        prometheus.Registerer
}

// WithCatalogue selects the parameter catalogue. Panics on nil.
// Default: catalogue.Default().
func WithCatalogue(c *catalogue.Catalogue) Option {
	if c == nil {
		panic("registry: WithCatalogue(nil)")
	}

	return func(cfg *config) { cfg.cat = c }
}

// WithArchetypes restricts the registry to the given tags, in the given
// order. Default: every archetype of the catalogue, in canonical order.
func WithArchetypes(tags ...catalogue.Archetype) Option {
	cp := make([]catalogue.Archetype, len(tags))
	copy(cp, tags)

	return func(cfg *config) { cfg.archetypes = cp }
}

// WithLogger attaches a structured logger. Default: zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *config) { cfg.log = l }
}

// WithRegisterer records compute metrics on reg. Default: no metrics.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(cfg *config) { cfg.reg = reg }
}

func gatherOptions(opts ...Option) config {
	cfg := config{cat: catalogue.Default(), log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.archetypes == nil {
		cfg.archetypes = cfg.cat.Archetypes()
	}

	return cfg
}
