package export

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNPYSerializer(t *testing.T) {
	s := &NPYSerializer{}
	g := fourShankGeometry()
	data, err := s.Serialize(g, "run1")
	require.NoError(t, err)

	// v1.0 preamble: magic, version, little-endian header length.
	require.True(t, len(data) > 10)
	assert.Equal(t, "\x93NUMPY", string(data[:6]))
	assert.Equal(t, byte(1), data[6])
	assert.Equal(t, byte(0), data[7])

	headerLen := int(binary.LittleEndian.Uint16(data[8:10]))
	dataStart := 10 + headerLen
	assert.Equal(t, 0, dataStart%64, "data section starts on a 64-byte boundary")
	assert.Equal(t, byte('\n'), data[dataStart-1], "header ends with newline")

	header := string(data[10 : dataStart-1])
	assert.Contains(t, header, "'descr': '<f8'")
	assert.Contains(t, header, "'shape': (3, 2)")

	require.Equal(t, dataStart+3*16, len(data), "3 rows of 2 float64s")
	x0 := math.Float64frombits(binary.LittleEndian.Uint64(data[dataStart:]))
	y0 := math.Float64frombits(binary.LittleEndian.Uint64(data[dataStart+8:]))
	x2 := math.Float64frombits(binary.LittleEndian.Uint64(data[dataStart+32:]))
	assert.Equal(t, 27.0, x0)
	assert.Equal(t, 0.0, y0)
	assert.Equal(t, 530.0, x2, "absolute x for shank 2")
}
