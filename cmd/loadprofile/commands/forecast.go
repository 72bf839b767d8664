// SPDX-License-Identifier: MIT
// Package commands: forecast command and history helpers.

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/loadprofile/forecast"
	"github.com/katalvlaran/loadprofile/series"
)

func newForecastCommand(a *app) *cobra.Command {
	var (
		format string
		steps  int
		days   int
		season int
	)

	cmd := &cobra.Command{
		Use:   "forecast <archetype>",
		Short: "Train a seasonal-naive forecaster on a profile and print its forecast",
		Long: `Repeat one archetype's profile --days times as training history, train the
seasonal-naive baseline on it and print --steps forecast rows. The forecast
is scored against the profile's own continuation and the scores are logged.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.format(format)
			if err != nil {
				return err
			}
			fc := a.cfg.Forecast
			if cmd.Flags().Changed("steps") {
				fc.Steps = steps
			}
			if cmd.Flags().Changed("days") {
				fc.Days = days
			}
			if cmd.Flags().Changed("season") {
				fc.Season = season
			}
			if fc.Steps < 1 || fc.Days < 1 || fc.Season < 1 {
				return fmt.Errorf("steps, days and season must be >= 1, got %d, %d, %d", fc.Steps, fc.Days, fc.Season)
			}

			r, err := a.registry(args)
			if err != nil {
				return err
			}
			tag := r.Archetypes()[0]
			profile, err := r.Table(tag)
			if err != nil {
				return err
			}
			history, err := repeatTable(profile, fc.Days)
			if err != nil {
				return err
			}

			model := forecast.NewSeasonalNaive(forecast.WithSeason(fc.Season), forecast.WithLogger(a.log))
			if err := model.Train(history); err != nil {
				return err
			}
			out, err := model.Forecast(fc.Steps)
			if err != nil {
				return err
			}

			actual, err := continuation(profile, out)
			if err != nil {
				return err
			}
			acc, err := forecast.Evaluate(actual, out)
			if err != nil {
				return err
			}
			a.log.Info().
				Str("archetype", string(tag)).
				Int("history", history.Len()).
				Int("steps", out.Len()).
				Float64("mae", acc.MAE).
				Float64("rmse", acc.RMSE).
				Float64("max_abs", acc.MaxAbs).
				Msg("forecast scored")

			return writeTables(cmd.OutOrStdout(), f, []series.Table{out})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (csv|yaml|json); overrides the config file")
	cmd.Flags().IntVar(&steps, "steps", 0, "rows to forecast; overrides forecast.steps")
	cmd.Flags().IntVar(&days, "days", 0, "profile repetitions used as history; overrides forecast.days")
	cmd.Flags().IntVar(&season, "season", 0, "season length in rows; overrides forecast.season")

	return cmd
}

// repeatTable lays days copies of t end to end. Each copy is shifted by the
// span of t plus one step, so the index stays strictly increasing.
func repeatTable(t series.Table, days int) (series.Table, error) {
	period := t.Last().Index - t.Rows[0].Index + t.Step()
	idx := make([]float64, 0, days*t.Len())
	vals := make([]float64, 0, days*t.Len())
	for d := 0; d < days; d++ {
		for _, row := range t.Rows {
			idx = append(idx, row.Index+float64(d)*period)
			vals = append(vals, row.Value)
		}
	}

	return series.New(t.Name, idx, vals)
}

// continuation returns the values t would take, cycling, on the rows of
// out: the ground truth for a profile repeated indefinitely.
func continuation(t, out series.Table) (series.Table, error) {
	vals := make([]float64, out.Len())
	for h := range vals {
		vals[h] = t.Rows[h%t.Len()].Value
	}

	return series.New(t.Name+"/actual", out.Indices(), vals)
}
