package core

// ChannelGeometry is the physical position of one saved channel.
// X is local to the channel's shank; add Shank*ShankPitch for an
// absolute position across a multishank probe.
type ChannelGeometry struct {
	Shank     int
	X         float64
	Y         float64
	Connected bool
}

// Geometry is the resolved layout of every saved channel of a recording.
// Channel order matches the saved-channel order in the metadata, so the
// slice index is the 0-based channel index in the binary file.
type Geometry struct {
	PartNumber string
	ShankCount int
	ShankWidth float64
	ShankPitch float64
	Channels   []ChannelGeometry
}

// AbsX returns the absolute x position of channel i, with the shank
// separation applied.
func (g *Geometry) AbsX(i int) float64 {
	c := g.Channels[i]
	return float64(c.Shank)*g.ShankPitch + c.X
}

// DisconnectChannels clears the connected flag for the listed channel
// indices. Indices outside the channel range are ignored; sorter helpers
// sometimes flag the SYNC channel, which is past the AP range.
func (g *Geometry) DisconnectChannels(chans []int) {
	for _, c := range chans {
		if c >= 0 && c < len(g.Channels) {
			g.Channels[c].Connected = false
		}
	}
}

// GainInfo holds the gain and filter facts derived from the imroTbl tag:
// the AP and LF gains of the probe's first readout channel, and whether
// any channel is configured full-band (AP highpass filter off).
type GainInfo struct {
	APGain   float64
	LFGain   float64
	FullBand bool
}
