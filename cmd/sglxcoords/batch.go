package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/ephysio/sglxcoords"
)

var batchPattern string

var batchCmd = &cobra.Command{
	Use:   "batch <root-dir>",
	Short: "Convert every metadata file under a directory",
	Long: `Walk a directory tree and convert every metadata file matching the
glob pattern. Conversion failures are logged and skipped so one bad file
does not abort a whole session's worth of recordings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, outType, err := conversionOptions()
		if err != nil {
			return err
		}
		root := args[0]

		matches, err := doublestar.Glob(os.DirFS(root), batchPattern)
		if err != nil {
			return fmt.Errorf("bad pattern %q: %w", batchPattern, err)
		}

		converted, failed := 0, 0
		for _, match := range matches {
			if strings.HasSuffix(match, "_orig.meta") {
				continue // pre-augmentation backups
			}
			path := filepath.Join(root, match)
			if _, err := sglxcoords.MetaToCoords(path, outType, opts...); err != nil {
				slog.Error("conversion failed", "path", path, "error", err)
				failed++
				continue
			}
			converted++
		}

		slog.Info("batch done", "converted", converted, "failed", failed)
		if converted == 0 && failed == 0 {
			return fmt.Errorf("no files matched %q under %s", batchPattern, root)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d conversions failed", failed, converted+failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
	addConvertFlags(batchCmd)
	batchCmd.Flags().StringVar(&batchPattern, "pattern", "**/*.ap.meta", "Glob pattern for metadata files")
	batchCmd.SilenceUsage = true
}
