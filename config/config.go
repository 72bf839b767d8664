// SPDX-License-Identifier: MIT
// Package config: loading, validation and resolution.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/loadprofile/catalogue"
	"github.com/katalvlaran/loadprofile/timegrid"
)

// Output formats accepted by Format.
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the full run configuration.
type Config struct {
	Grid       Grid     `yaml:"grid"`
	Archetypes []string `yaml:"archetypes"` // empty selects every catalogue archetype
	Catalogue  string   `yaml:"catalogue"`  // optional catalogue YAML path; empty uses the built-in one
	Format     string   `yaml:"format"`
	LogLevel   string   `yaml:"log_level"`
	Forecast   Forecast `yaml:"forecast"`
}

// Grid describes an evenly stepped sampling grid.
type Grid struct {
	Length int     `yaml:"length"`
	Start  float64 `yaml:"start"`
	Step   float64 `yaml:"step"`
}

// Forecast holds seasonal-naive settings.
type Forecast struct {
	Steps  int `yaml:"steps"`  // rows to forecast
	Season int `yaml:"season"` // season length in rows
	Days   int `yaml:"days"`   // profile repetitions used as training history
}

// Default returns the canonical configuration.
func Default() Config {
	return Config{
		Grid: Grid{
			Length: timegrid.DayLength,
			Start:  timegrid.DefaultStart,
			Step:   timegrid.DefaultStep,
		},
		Format:   FormatCSV,
		LogLevel: zerolog.LevelInfoValue,
		Forecast: Forecast{
			Steps:  timegrid.DayLength,
			Season: timegrid.DayLength,
			Days:   2,
		},
	}
}

// Load reads path, overlays it on Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML from r over Default and validates the result.
// An empty document yields Default.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first out-of-domain value, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Grid.Length < 1:
		return fmt.Errorf("grid.length must be >= 1, got %d: %w", c.Grid.Length, ErrInvalidConfig)
	case math.IsNaN(c.Grid.Start) || math.IsInf(c.Grid.Start, 0):
		return fmt.Errorf("grid.start must be finite, got %v: %w", c.Grid.Start, ErrInvalidConfig)
	case !(c.Grid.Step > 0) || math.IsInf(c.Grid.Step, 0):
		return fmt.Errorf("grid.step must be finite and > 0, got %v: %w", c.Grid.Step, ErrInvalidConfig)
	case c.Forecast.Steps < 1:
		return fmt.Errorf("forecast.steps must be >= 1, got %d: %w", c.Forecast.Steps, ErrInvalidConfig)
	case c.Forecast.Season < 1:
		return fmt.Errorf("forecast.season must be >= 1, got %d: %w", c.Forecast.Season, ErrInvalidConfig)
	case c.Forecast.Days < 1:
		return fmt.Errorf("forecast.days must be >= 1, got %d: %w", c.Forecast.Days, ErrInvalidConfig)
	}

	switch c.Format {
	case FormatCSV, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("format must be csv, yaml or json, got %q: %w", c.Format, ErrInvalidConfig)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}

	seen := make(map[string]struct{}, len(c.Archetypes))
	for _, a := range c.Archetypes {
		key := strings.ToLower(strings.TrimSpace(a))
		if _, dup := seen[key]; dup {
			return fmt.Errorf("archetype %q listed twice: %w", a, ErrInvalidConfig)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// Level returns the parsed log level. Call after Validate.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}

	return lvl
}

// GridPoints builds the configured grid.
func (c Config) GridPoints() ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return timegrid.New(c.Grid.Length,
		timegrid.WithStart(c.Grid.Start),
		timegrid.WithStep(c.Grid.Step))
}

// LoadCatalogue returns the catalogue named by Catalogue, or the built-in one.
func (c Config) LoadCatalogue() (*catalogue.Catalogue, error) {
	if c.Catalogue == "" {
		return catalogue.Default(), nil
	}
	f, err := os.Open(c.Catalogue)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue: %w", err)
	}
	defer f.Close()

	return catalogue.ReadYAML(f)
}

// Resolve maps the configured archetype names onto cat's tags, in the
// configured order. An empty selection resolves to every tag of cat.
func (c Config) Resolve(cat *catalogue.Catalogue) ([]catalogue.Archetype, error) {
	if len(c.Archetypes) == 0 {
		return cat.Archetypes(), nil
	}
	out := make([]catalogue.Archetype, 0, len(c.Archetypes))
	for _, name := range c.Archetypes {
		tag, err := cat.Lookup(name)
		if err != nil {
			return nil, err
		}
		out = append(out, tag)
	}

	return out, nil
}
