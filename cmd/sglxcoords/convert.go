package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ephysio/sglxcoords"
	"github.com/ephysio/sglxcoords/pkg/export"
)

var convertCmd = &cobra.Command{
	Use:   "convert <meta-file>",
	Short: "Convert one metadata file",
	Long: `Convert a single SpikeGLX .meta file into the selected output format.
With --out-type 4 no file is written; the coordinate table is printed to
stdout instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, outType, err := conversionOptions()
		if err != nil {
			return err
		}

		g, err := sglxcoords.MetaToCoords(args[0], outType, opts...)
		if err != nil {
			return err
		}

		if outType == export.OutNone {
			for i, c := range g.Channels {
				fmt.Printf("%d\t%g\t%g\t%d\n", i, g.AbsX(i), c.Y, c.Shank)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	addConvertFlags(convertCmd)
	convertCmd.SilenceUsage = true
}
