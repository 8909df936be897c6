// Package pipeline orchestrates a conversion run: read the metadata,
// resolve geometry, and hand the result to the selected exporter.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/export"
	"github.com/ephysio/sglxcoords/pkg/geom"
	"github.com/ephysio/sglxcoords/pkg/meta"
	"github.com/ephysio/sglxcoords/pkg/probe"
)

// Run converts one metadata file. It always returns the resolved
// geometry; for out types other than OutNone it also writes the
// corresponding artifact.
func Run(metaPath string, outType export.OutType, opts ...Option) (*core.Geometry, error) {
	o := parseOptions(opts)

	m, err := meta.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	g, err := geom.Resolve(m)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve geometry for %s: %w", metaPath, err)
	}
	g.DisconnectChannels(o.BadChans)

	if o.Logger != nil {
		o.Logger.Debug("resolved geometry",
			"path", metaPath,
			"probe", g.PartNumber,
			"channels", len(g.Channels),
			"shanks", g.ShankCount)
	}

	switch outType {
	case export.OutNone:
		return g, nil
	case export.OutMetaGeom:
		if err := augment(metaPath, m, g, o.Logger); err != nil {
			return nil, err
		}
		return g, augmentSibling(metaPath, o.BadChans, o.Logger)
	}

	ser, ok := export.DefaultSerializers(o.MapFormat)[outType]
	if !ok {
		return nil, fmt.Errorf("unknown out type %d", outType)
	}

	data, err := ser.Serialize(g, baseName(metaPath))
	if err != nil {
		return nil, fmt.Errorf("failed to serialize %s: %w", metaPath, err)
	}

	outPath := outputPath(metaPath, ser.Suffix(), o.OutDir)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	if o.Logger != nil {
		o.Logger.Info("wrote coordinates", "path", outPath)
	}
	return g, nil
}

// augment appends the gain, MUX and geometry lines to one metadata file.
func augment(metaPath string, m core.Meta, g *core.Geometry, logger *slog.Logger) error {
	info, err := probe.DeriveGainInfo(m)
	if err != nil {
		return fmt.Errorf("failed to derive gains for %s: %w", metaPath, err)
	}

	pn := m.PartNumber()
	mux, ok := probe.LookupMuxTable(pn)
	if !ok && logger != nil {
		// Non-fatal: the augmented file just carries an empty table.
		logger.Warn("no MUX table for probe", "partNumber", pn)
	}

	if err := export.Augment(metaPath, g, info, mux); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("augmented metadata", "path", metaPath)
	}
	return nil
}

// augmentSibling repeats the augmentation on the low-frequency companion
// file when one sits next to the AP file. The LF file carries its own
// shank map and imro table, so the whole derivation is re-run on it; the
// bad-channel list applies to both files so their connected flags agree.
func augmentSibling(apPath string, badChans []int, logger *slog.Logger) error {
	lfPath, ok := export.LFSibling(apPath)
	if !ok {
		return nil
	}

	m, err := meta.ReadFile(lfPath)
	if err != nil {
		return err
	}
	g, err := geom.Resolve(m)
	if err != nil {
		return fmt.Errorf("failed to resolve geometry for %s: %w", lfPath, err)
	}
	g.DisconnectChannels(badChans)
	return augment(lfPath, m, g, logger)
}

// baseName is the metadata filename without its .meta extension; output
// filenames are formed by suffixing it.
func baseName(metaPath string) string {
	return strings.TrimSuffix(filepath.Base(metaPath), ".meta")
}

// outputPath places the artifact next to the input unless an output
// directory override is set.
func outputPath(metaPath, suffix, outDir string) string {
	dir := filepath.Dir(metaPath)
	if outDir != "" {
		dir = outDir
	}
	return filepath.Join(dir, baseName(metaPath)+suffix)
}
