package export

import (
	"bytes"
	"fmt"

	"github.com/ephysio/sglxcoords/pkg/core"
)

// TextSerializer writes one tab-separated line per saved channel:
// 0-based channel index, absolute x, y, shank index. The channel index is
// the channel's position in the saved file, not its original hardware
// index.
type TextSerializer struct{}

func (s *TextSerializer) Suffix() string { return "_siteCoords.txt" }

func (s *TextSerializer) Serialize(g *core.Geometry, name string) ([]byte, error) {
	var buf bytes.Buffer
	for i, c := range g.Channels {
		fmt.Fprintf(&buf, "%d\t%g\t%g\t%d\n", i, g.AbsX(i), c.Y, c.Shank)
	}
	return buf.Bytes(), nil
}
