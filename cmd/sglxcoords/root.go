package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ephysio/sglxcoords"
	"github.com/ephysio/sglxcoords/pkg/export"
)

var (
	verbose bool

	// Conversion flags shared by convert, batch and watch.
	outTypeFlag   int
	outDirFlag    string
	mapFormatFlag string
	badChansFlag  []int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sglxcoords",
	Short: "Derive channel coordinates from SpikeGLX metadata files",
	Long: `sglxcoords reads the .meta sidecar written by SpikeGLX, resolves the
physical (x, y, shank) position of every saved channel, and writes the
result for spike-sorting and visualization tools (Kilosort, JRClust, or
plain coordinate tables). It can also upgrade shank-map-era metadata by
appending a geometry table to the file itself.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// addConvertFlags registers the flags that select and tune the output
// format, shared by every converting subcommand.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&outTypeFlag, "out-type", "t", int(export.OutKilosort),
		"Output: 0 text table, 1 kilosort map, 2 JRClust snippet, 3 augment metadata, 4 resolve only, 5 npy matrix")
	cmd.Flags().StringVar(&outDirFlag, "out-dir", "",
		"Write outputs here instead of next to the input (not for --out-type 3)")
	cmd.Flags().StringVar(&mapFormatFlag, "map-format", "json",
		"Kilosort channel map format: json | yaml")
	cmd.Flags().IntSliceVar(&badChansFlag, "bad-chans", nil,
		"Channel indices to mark disconnected (comma-separated)")
}

// conversionOptions translates the shared flags into pipeline options.
func conversionOptions() ([]sglxcoords.Option, export.OutType, error) {
	if outTypeFlag < int(export.OutText) || outTypeFlag > int(export.OutNPY) {
		return nil, 0, fmt.Errorf("invalid out type %d (use 0-5)", outTypeFlag)
	}

	var format export.MapFormat
	switch mapFormatFlag {
	case "json":
		format = export.MapJSON
	case "yaml":
		format = export.MapYAML
	default:
		return nil, 0, fmt.Errorf("invalid map format %q (use 'json' or 'yaml')", mapFormatFlag)
	}

	opts := []sglxcoords.Option{
		sglxcoords.WithMapFormat(format),
		sglxcoords.WithLogger(slog.Default()),
	}
	if outDirFlag != "" {
		opts = append(opts, sglxcoords.WithOutDir(outDirFlag))
	}
	if len(badChansFlag) > 0 {
		opts = append(opts, sglxcoords.WithBadChans(badChansFlag))
	}
	return opts, export.OutType(outTypeFlag), nil
}
