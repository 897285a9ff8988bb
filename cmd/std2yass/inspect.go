// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/std2yass/internal/convert"
	"github.com/pdiddy/std2yass/pkg/types"
)

func newInspectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [infile]",
		Short: "Print the dimensions and cubicle count of a SOMA figure",
		Long: `Inspect parses a SOMA figure with the same rules as conversion and
prints its width, depth, height and the number of filled and empty cells.
A complete SOMA figure has 27 cubicles; inspect reports the count but does
not reject other sizes.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var inPath string
			if len(args) > 0 {
				inPath = args[0]
			}
			format, _ := cmd.Flags().GetString("format")

			piece, err := readPiece(inPath, cmd.InOrStdin(), conversionConfig(v))
			if err != nil {
				return err
			}
			return convert.WriteReport(cmd.OutOrStdout(), convert.Stats(piece), types.ReportFormat(format))
		},
	}
	cmd.Flags().String("format", "yaml", "report format: yaml or json")
	return cmd
}
