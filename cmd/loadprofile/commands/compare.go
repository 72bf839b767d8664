// SPDX-License-Identifier: MIT
// Package commands: compare command.

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/loadprofile/catalogue"
	"github.com/katalvlaran/loadprofile/dtw"
	"github.com/katalvlaran/loadprofile/registry"
)

func newCompareCommand(a *app) *cobra.Command {
	var (
		window  int
		penalty float64
	)

	cmd := &cobra.Command{
		Use:   "compare [<archetype> <archetype>]",
		Short: "Compare profile shapes by DTW distance",
		Long: `Print the dynamic-time-warping distance between two archetype profiles, next
to their pointwise Euclidean distance. Without arguments every pair of the
selected archetypes is compared.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("compare takes no archetypes or exactly two, got %d", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := dtw.DefaultOptions()
			opts.Window = window
			opts.SlopePenalty = penalty

			r, err := a.registry(args)
			if err != nil {
				return err
			}
			tags := r.Archetypes()

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "A\tB\tDTW\tEUCLIDEAN")
			for i := 0; i < len(tags); i++ {
				for j := i + 1; j < len(tags); j++ {
					if err := comparePair(tw, r, tags[i], tags[j], &opts); err != nil {
						return err
					}
				}
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&window, "window", "w", -1, "Sakoe-Chiba band half-width in slots; -1 means unlimited")
	cmd.Flags().Float64Var(&penalty, "penalty", 0, "extra cost per non-diagonal DTW step")

	return cmd
}

func comparePair(tw *tabwriter.Writer, r *registry.Registry, x, y catalogue.Archetype, opts *dtw.Options) error {
	d, err := r.Distance(x, y, opts)
	if err != nil {
		return err
	}
	vx, _ := r.Values(x)
	vy, _ := r.Values(y)
	fmt.Fprintf(tw, "%s\t%s\t%.6f\t%.6f\n", x, y, d, floats.Distance(vx, vy, 2))

	return nil
}
