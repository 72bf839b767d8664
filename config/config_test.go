package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/loadprofile/catalogue"
	"github.com/katalvlaran/loadprofile/config"
	"github.com/katalvlaran/loadprofile/timegrid"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	grid, err := cfg.GridPoints()
	require.NoError(t, err)
	assert.Equal(t, timegrid.Default(), grid)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())

	tags, err := cfg.Resolve(catalogue.Default())
	require.NoError(t, err)
	assert.Equal(t, catalogue.Default().Archetypes(), tags)
}

func TestParse_Overlay(t *testing.T) {
	doc := `
grid:
  length: 24
  step: 2
archetypes: [affluent, " AcornU "]
format: yaml
log_level: debug
forecast:
  steps: 12
`
	cfg, err := config.Parse(strings.NewReader(doc))
	require.NoError(t, err)

	grid, err := cfg.GridPoints()
	require.NoError(t, err)
	assert.Equal(t, timegrid.Hourly(), grid)
	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.Equal(t, 12, cfg.Forecast.Steps)
	assert.Equal(t, timegrid.DayLength, cfg.Forecast.Season, "unset keys keep defaults")

	tags, err := cfg.Resolve(catalogue.Default())
	require.NoError(t, err)
	assert.Equal(t, []catalogue.Archetype{catalogue.Affluent, catalogue.AcornU}, tags)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":      "colour: blue\n",
		"zero length":      "grid: {length: 0}\n",
		"zero step":        "grid: {step: 0}\n",
		"negative step":    "grid: {step: -1}\n",
		"infinite start":   "grid: {start: .inf}\n",
		"bad format":       "format: xml\n",
		"bad level":        "log_level: loud\n",
		"empty level":      "log_level: \"\"\n",
		"zero steps":       "forecast: {steps: 0}\n",
		"zero season":      "forecast: {season: 0}\n",
		"zero days":        "forecast: {days: 0}\n",
		"duplicate tag":    "archetypes: [Affluent, affluent]\n",
		"malformed YAML":   "grid: [\n",
		"wrong value type": "grid: {length: many}\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	cfg := config.Default()
	cfg.Archetypes = []string{"Affluent", "Nope"}
	_, err := cfg.Resolve(catalogue.Default())
	assert.ErrorIs(t, err, catalogue.ErrUnknownArchetype)
}

func TestGridPoints_Invalid(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Step = 0
	_, err := cfg.GridPoints()
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	catPath := filepath.Join(dir, "catalogue.yaml")
	f, err := os.Create(catPath)
	require.NoError(t, err)
	require.NoError(t, catalogue.Default().WriteYAML(f))
	require.NoError(t, f.Close())

	cfgPath := filepath.Join(dir, "loadprofile.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("catalogue: "+catPath+"\nformat: json\n"), 0o644))

	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Format)

	cat, err := cfg.LoadCatalogue()
	require.NoError(t, err)
	assert.Equal(t, catalogue.Version, cat.Version())
	assert.Equal(t, catalogue.Default().Archetypes(), cat.Archetypes())
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cfg := config.Default()
	cfg.Catalogue = filepath.Join(t.TempDir(), "absent.yaml")
	_, err = cfg.LoadCatalogue()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
