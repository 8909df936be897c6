package export

import (
	"github.com/ephysio/sglxcoords/pkg/core"
)

// fourShankGeometry is a small multishank fixture; channel 2 sits on
// shank 2 with local x 30, so its absolute x is 2*250 + 30 = 530.
func fourShankGeometry() *core.Geometry {
	return &core.Geometry{
		PartNumber: "NP2014",
		ShankCount: 4,
		ShankWidth: 70,
		ShankPitch: 250,
		Channels: []core.ChannelGeometry{
			{Shank: 0, X: 27, Y: 0, Connected: true},
			{Shank: 1, X: 59, Y: 15, Connected: true},
			{Shank: 2, X: 30, Y: 45, Connected: false},
		},
	}
}
