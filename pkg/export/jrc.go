package export

import (
	"bytes"
	"fmt"

	"github.com/ephysio/sglxcoords/pkg/core"
)

// JRCSerializer writes three assignment statements to paste into a
// JRClust .prm file: 1-based shank indices, absolute (x,y) pairs, and the
// 1-based site order. siteMap is the order of channels in the saved file
// rather than original hardware indices.
type JRCSerializer struct{}

func (s *JRCSerializer) Suffix() string { return "_forJRCprm.txt" }

func (s *JRCSerializer) Serialize(g *core.Geometry, name string) ([]byte, error) {
	if len(g.Channels) == 0 {
		return nil, fmt.Errorf("geometry has no channels")
	}

	var shanks, coords, sites bytes.Buffer
	shanks.WriteString("shankMap = [")
	coords.WriteString("siteLoc = [")
	sites.WriteString("siteMap = [")

	last := len(g.Channels) - 1
	for i, c := range g.Channels {
		fmt.Fprintf(&shanks, "%d", c.Shank+1)
		fmt.Fprintf(&coords, "%g,%g", g.AbsX(i), c.Y)
		fmt.Fprintf(&sites, "%d", i+1)
		if i < last {
			shanks.WriteByte(',')
			coords.WriteByte(';')
			sites.WriteByte(',')
		}
	}
	shanks.WriteString("];\n")
	coords.WriteString("];\n")
	sites.WriteString("];\n")

	var buf bytes.Buffer
	buf.Write(shanks.Bytes())
	buf.Write(coords.Bytes())
	buf.Write(sites.Bytes())
	return buf.Bytes(), nil
}
