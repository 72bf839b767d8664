// SPDX-License-Identifier: MIT
// Package commands: root command and shared state.

package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loadprofile/config"
	"github.com/katalvlaran/loadprofile/registry"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	cfgPath     string
	logLevel    string
	metricsFile string

	cfg config.Config
	log zerolog.Logger
	reg *prometheus.Registry
}

// NewRootCommand returns a fresh command tree. Each call owns its flags,
// so tests can build and execute trees independently.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "loadprofile",
		Short: "Synthetic household electricity demand profiles",
		Long: `loadprofile samples per-archetype Gaussian-mixture demand shapes on a
half-hourly day grid and hands them on as two-column (index, value) tables.

Configuration is read from an optional YAML file (--config); flags override it.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return a.flushMetrics()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (trace|debug|info|warn|error); overrides the config file")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics in text format to this file on exit")

	root.AddCommand(
		newProfilesCommand(a),
		newCatalogueCommand(a),
		newSummaryCommand(a),
		newForecastCommand(a),
		newCompareCommand(a),
	)

	return root
}

// Execute runs root and prints a failure to its error stream.
func Execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}

	return err
}

// setup loads configuration, applies global flag overrides and builds the
// logger and metrics registry.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		Level(cfg.Level()).
		With().Timestamp().Str("cmd", cmd.Name()).
		Logger()
	a.reg = prometheus.NewRegistry()

	a.log.Debug().
		Str("config", a.cfgPath).
		Int("grid_length", cfg.Grid.Length).
		Str("format", cfg.Format).
		Msg("configuration loaded")

	return nil
}

func (a *app) flushMetrics() error {
	if a.metricsFile == "" || a.reg == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.metricsFile, a.reg); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	a.log.Debug().Str("path", a.metricsFile).Msg("metrics written")

	return nil
}

// registry builds a registry from the configuration. A non-empty
// archetypes slice replaces the configured selection.
func (a *app) registry(archetypes []string) (*registry.Registry, error) {
	cfg := a.cfg
	if len(archetypes) > 0 {
		cfg.Archetypes = archetypes
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	cat, err := cfg.LoadCatalogue()
	if err != nil {
		return nil, err
	}
	tags, err := cfg.Resolve(cat)
	if err != nil {
		return nil, err
	}
	grid, err := cfg.GridPoints()
	if err != nil {
		return nil, err
	}

	return registry.New(grid,
		registry.WithCatalogue(cat),
		registry.WithArchetypes(tags...),
		registry.WithLogger(a.log),
		registry.WithRegisterer(a.reg))
}

// format returns the flag value when set, else the configured format.
func (a *app) format(flag string) (string, error) {
	if flag == "" {
		return a.cfg.Format, nil
	}
	switch flag {
	case config.FormatCSV, config.FormatYAML, config.FormatJSON:
		return flag, nil
	}

	return "", fmt.Errorf("unknown format %q (want csv, yaml or json): %w", flag, config.ErrInvalidConfig)
}
