// Package export serializes resolved channel geometry into the formats
// downstream analysis tools consume.
package export

import "github.com/ephysio/sglxcoords/pkg/core"

// OutType selects the output representation.
type OutType int

const (
	// OutText is a tab-delimited table: channel index, absolute x, y, shank.
	OutText OutType = 0
	// OutKilosort is a Kilosort channel map file.
	OutKilosort OutType = 1
	// OutJRC is a snippet of assignments for a JRClust .prm file.
	OutJRC OutType = 2
	// OutMetaGeom appends gain, MUX and geometry lines to a copy of the
	// metadata file itself (for upgrading shank-map-era metadata).
	OutMetaGeom OutType = 3
	// OutNone resolves the geometry without writing any file.
	OutNone OutType = 4
	// OutNPY is an nChan x 2 float64 matrix of (absolute x, y) positions.
	OutNPY OutType = 5
)

// MapFormat selects the marshaling of the Kilosort channel map.
type MapFormat string

const (
	MapJSON MapFormat = "json"
	MapYAML MapFormat = "yaml"
)

// Serializer renders a geometry into the bytes of one output format.
type Serializer interface {
	// Serialize converts the geometry to bytes. name is the base name of
	// the recording, for formats that embed it.
	Serialize(g *core.Geometry, name string) ([]byte, error)
	// Suffix is appended to the recording base name to form the output
	// filename, including the extension.
	Suffix() string
}

// DefaultSerializers returns the serializer for each file-writing out
// type. OutMetaGeom is not in the set: it rewrites the metadata file in
// place rather than producing a standalone artifact (see [Augment]).
func DefaultSerializers(ksFormat MapFormat) map[OutType]Serializer {
	return map[OutType]Serializer{
		OutText:     &TextSerializer{},
		OutKilosort: NewKilosortSerializer(ksFormat),
		OutJRC:      &JRCSerializer{},
		OutNPY:      &NPYSerializer{},
	}
}
