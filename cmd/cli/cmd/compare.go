// Package cmd - compare command
package cmd

import (
	"github.com/spf13/cobra"
)

func newCompareCmd(opts *options) *cobra.Command {
	compareCmd := &cobra.Command{
		Use:   "compare <value1> <unit1> <value2> <unit2>",
		Short: "Express two quantities of the same type in each other's unit",
		Long: `Convert the first value into the second unit and the second value into the
first unit. Both units must belong to the same measurement type.

Examples:
  convert compare 5 km 3 mi
  convert compare 100 C 212 F
  convert compare -40 C -40 F`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			cmp, err := opts.converter.CompareQuantities(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}
			return opts.formatter.RenderComparison(cmd.OutOrStdout(), cmp)
		},
	}

	compareCmd.Flags().SetInterspersed(false)
	return compareCmd
}
