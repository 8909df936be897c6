package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ephysio/sglxcoords/pkg/core"
)

// NPYSerializer writes an nChan x 2 float64 matrix of (absolute x, y)
// positions as a NumPy .npy file, consumed by YASS and related sorters.
type NPYSerializer struct{}

func (s *NPYSerializer) Suffix() string { return "_siteCoords.npy" }

func (s *NPYSerializer) Serialize(g *core.Geometry, name string) ([]byte, error) {
	var buf bytes.Buffer
	writeNPYHeader(&buf, len(g.Channels))

	row := make([]byte, 16)
	for i, c := range g.Channels {
		binary.LittleEndian.PutUint64(row[0:8], math.Float64bits(g.AbsX(i)))
		binary.LittleEndian.PutUint64(row[8:16], math.Float64bits(c.Y))
		buf.Write(row)
	}
	return buf.Bytes(), nil
}

// writeNPYHeader emits the NPY v1.0 preamble for an (n, 2) little-endian
// float64 C-order array. The header dict is space-padded so the data
// section starts on a 64-byte boundary, as NumPy requires.
func writeNPYHeader(buf *bytes.Buffer, n int) {
	dict := fmt.Sprintf("{'descr': '<f8', 'fortran_order': False, 'shape': (%d, 2), }", n)

	// magic(6) + version(2) + header length(2) + dict + padding + '\n'
	unpadded := 6 + 2 + 2 + len(dict) + 1
	padding := (64 - unpadded%64) % 64
	headerLen := len(dict) + padding + 1

	buf.WriteString("\x93NUMPY")
	buf.WriteByte(1)
	buf.WriteByte(0)
	var lenBytes [2]byte
	binary.LittleEndian.PutUint16(lenBytes[:], uint16(headerLen))
	buf.Write(lenBytes[:])
	buf.WriteString(dict)
	for i := 0; i < padding; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteByte('\n')
}
