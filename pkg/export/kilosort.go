package export

import (
	"encoding/json"
	"fmt"

	"github.com/ephysio/sglxcoords/pkg/core"
	"gopkg.in/yaml.v3"
)

// ChanMap is the Kilosort channel map structure. chanMap and kcoords are
// 1-based as Kilosort runs in MATLAB; chanMap0ind is the same order
// 0-based. Coordinates are absolute (shank separation applied).
type ChanMap struct {
	ChanMap     []int     `json:"chanMap" yaml:"chanMap"`
	ChanMap0Ind []int     `json:"chanMap0ind" yaml:"chanMap0ind"`
	Connected   []bool    `json:"connected" yaml:"connected"`
	Name        string    `json:"name" yaml:"name"`
	XCoords     []float64 `json:"xcoords" yaml:"xcoords"`
	YCoords     []float64 `json:"ycoords" yaml:"ycoords"`
	KCoords     []float64 `json:"kcoords" yaml:"kcoords"`
}

// NewChanMap builds the channel map arrays from a resolved geometry.
// Channel order is the saved-file order, so entry i describes the i-th
// channel in the binary.
func NewChanMap(g *core.Geometry, name string) *ChanMap {
	n := len(g.Channels)
	cm := &ChanMap{
		ChanMap:     make([]int, n),
		ChanMap0Ind: make([]int, n),
		Connected:   make([]bool, n),
		Name:        name,
		XCoords:     make([]float64, n),
		YCoords:     make([]float64, n),
		KCoords:     make([]float64, n),
	}
	for i, c := range g.Channels {
		cm.ChanMap[i] = i + 1
		cm.ChanMap0Ind[i] = i
		cm.Connected[i] = c.Connected
		cm.XCoords[i] = g.AbsX(i)
		cm.YCoords[i] = c.Y
		cm.KCoords[i] = float64(c.Shank + 1)
	}
	return cm
}

// KilosortSerializer marshals the channel map as JSON (default) or YAML.
type KilosortSerializer struct {
	Format MapFormat
}

// NewKilosortSerializer creates a serializer for the given map format;
// an empty format falls back to JSON.
func NewKilosortSerializer(format MapFormat) *KilosortSerializer {
	if format == "" {
		format = MapJSON
	}
	return &KilosortSerializer{Format: format}
}

func (s *KilosortSerializer) Suffix() string {
	return "_kilosortChanMap." + string(s.Format)
}

func (s *KilosortSerializer) Serialize(g *core.Geometry, name string) ([]byte, error) {
	cm := NewChanMap(g, name)
	switch s.Format {
	case MapJSON:
		return json.MarshalIndent(cm, "", "  ")
	case MapYAML:
		return yaml.Marshal(cm)
	default:
		return nil, fmt.Errorf("unknown channel map format %q", s.Format)
	}
}
