package sglxcoords

import (
	"log/slog"

	"github.com/ephysio/sglxcoords/internal/pipeline"
	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/export"
)

// --- Types ---

// Geometry is a public alias for the resolved channel geometry.
type Geometry = core.Geometry

// ChannelGeometry is a public alias for one channel's position.
type ChannelGeometry = core.ChannelGeometry

// GainInfo is a public alias for the imro-derived gain facts.
type GainInfo = core.GainInfo

// OutType selects the output representation.
type OutType = export.OutType

// Output representations. The numeric values are the historical out-type
// codes of the SpikeGLX conversion scripts.
const (
	OutText     = export.OutText     // tab-delimited coordinate table
	OutKilosort = export.OutKilosort // Kilosort channel map
	OutJRC      = export.OutJRC      // JRClust .prm snippet
	OutMetaGeom = export.OutMetaGeom // augmented metadata file
	OutNone     = export.OutNone     // resolve only, no file
	OutNPY      = export.OutNPY      // nChan x 2 coordinate matrix
)

// --- Configuration ---

// Option defines a functional option for configuring a conversion.
type Option = pipeline.Option

// WithOutDir overrides the output directory for file-writing formats.
func WithOutDir(dir string) Option {
	return pipeline.WithOutDir(dir)
}

// WithMapFormat selects json or yaml for the Kilosort channel map.
func WithMapFormat(f export.MapFormat) Option {
	return pipeline.WithMapFormat(f)
}

// WithBadChans marks the listed channel indices disconnected before
// export.
func WithBadChans(chans []int) Option {
	return pipeline.WithBadChans(chans)
}

// WithLogger sets the logger for the conversion.
func WithLogger(logger *slog.Logger) Option {
	return pipeline.WithLogger(logger)
}

// --- Entry point ---

// MetaToCoords reads a SpikeGLX metadata file, resolves the physical
// geometry of its saved channels, and writes it in the representation
// selected by outType. The resolved geometry is returned in every mode;
// OutNone writes nothing.
func MetaToCoords(metaPath string, outType OutType, opts ...Option) (*Geometry, error) {
	return pipeline.Run(metaPath, outType, opts...)
}
