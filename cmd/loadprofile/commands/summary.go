// SPDX-License-Identifier: MIT
// Package commands: summary command.

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSummaryCommand(a *app) *cobra.Command {
	var archetypes []string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Tabulate peak, trough and mean demand per archetype",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.registry(archetypes)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ARCHETYPE\tPEAK_T\tPEAK\tTROUGH_T\tTROUGH\tMEAN\tSTDDEV\tTOTAL")
			for _, tag := range r.Archetypes() {
				s, err := r.Summary(tag)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%g\t%.6f\t%g\t%.6f\t%.6f\t%.6f\t%.6f\n",
					tag, s.PeakT, s.PeakValue, s.TroughT, s.TroughValue, s.Mean, s.StdDev, s.Total)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&archetypes, "archetype", "a", nil, "archetypes to summarize (repeatable); default all")

	return cmd
}
