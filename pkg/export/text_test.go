package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextSerializer(t *testing.T) {
	s := &TextSerializer{}
	data, err := s.Serialize(fourShankGeometry(), "run1")
	require.NoError(t, err)

	want := "0\t27\t0\t0\n" +
		"1\t309\t15\t1\n" + // 1*250 + 59
		"2\t530\t45\t2\n" // 2*250 + 30
	assert.Equal(t, want, string(data))
	assert.Equal(t, "_siteCoords.txt", s.Suffix())
}
