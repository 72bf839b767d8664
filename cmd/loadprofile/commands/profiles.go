// SPDX-License-Identifier: MIT
// Package commands: profiles command.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/loadprofile/series"
)

func newProfilesCommand(a *app) *cobra.Command {
	var (
		format     string
		archetypes []string
	)

	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Print computed profiles as handoff tables",
		Long: `Compute the selected archetype profiles on the configured grid and print
each as an (index, value) table in csv, yaml or json.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.format(format)
			if err != nil {
				return err
			}
			r, err := a.registry(archetypes)
			if err != nil {
				return err
			}

			tables := make([]series.Table, 0, len(r.Archetypes()))
			for _, tag := range r.Archetypes() {
				t, err := r.Table(tag)
				if err != nil {
					return err
				}
				tables = append(tables, t)
			}

			return writeTables(cmd.OutOrStdout(), f, tables)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (csv|yaml|json); overrides the config file")
	cmd.Flags().StringSliceVarP(&archetypes, "archetype", "a", nil, "archetypes to print (repeatable); default all")

	return cmd
}
