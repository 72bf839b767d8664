// SPDX-License-Identifier: MIT
// Package commands: catalogue command.

package commands

import (
	"github.com/spf13/cobra"
)

func newCatalogueCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "catalogue",
		Short: "Dump the archetype parameter catalogue as YAML",
		Long: `Print the versioned archetype catalogue in use (built-in, or the file named
by the "catalogue" config key). The output can be edited and fed back
through the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.cfg.LoadCatalogue()
			if err != nil {
				return err
			}

			return cat.WriteYAML(cmd.OutOrStdout())
		},
	}
}
