// Package cmd - units command
package cmd

import (
	"github.com/spf13/cobra"

	"unit-convert/core/engine"
)

func newUnitsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "units [type]",
		Short: "List measurement types, their units and supported conversions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			var listings []engine.Listing
			if len(args) == 1 {
				l, err := engine.CatalogFor(args[0])
				if err != nil {
					return err
				}
				listings = []engine.Listing{l}
			} else {
				all, err := engine.Catalog()
				if err != nil {
					return err
				}
				listings = all
			}
			return opts.formatter.RenderCatalog(cmd.OutOrStdout(), listings)
		},
	}
}
