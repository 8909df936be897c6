package pipeline

import (
	"log/slog"

	"github.com/ephysio/sglxcoords/pkg/export"
)

// Options configures one conversion run.
type Options struct {
	// OutDir overrides the output directory for file-writing formats.
	// Empty means next to the input metadata file. Ignored by the
	// metadata-augmentation format, which always rewrites in place.
	OutDir string

	// MapFormat selects the Kilosort channel map marshaling.
	MapFormat export.MapFormat

	// BadChans lists channel indices to mark disconnected before export
	// (e.g. channels flagged noisy by a sorter helper).
	BadChans []int

	// Logger receives progress and warnings. Nil disables logging.
	Logger *slog.Logger
}

// Option defines a functional option for configuring a run.
type Option func(*Options)

// WithOutDir overrides the output directory.
func WithOutDir(dir string) Option {
	return func(o *Options) { o.OutDir = dir }
}

// WithMapFormat selects json or yaml for the Kilosort channel map.
func WithMapFormat(f export.MapFormat) Option {
	return func(o *Options) { o.MapFormat = f }
}

// WithBadChans marks the listed channels disconnected.
func WithBadChans(chans []int) Option {
	return func(o *Options) { o.BadChans = chans }
}

// WithLogger sets the logger for the run.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

func defaultOptions() *Options {
	return &Options{MapFormat: export.MapJSON}
}

func parseOptions(opts []Option) *Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return o
}
