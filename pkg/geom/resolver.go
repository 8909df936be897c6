package geom

import (
	"fmt"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/probe"
)

// Resolve derives the geometry of every saved channel. Metadata written
// by current acquisition software carries an explicit snsGeomMap, which
// is decoded verbatim; older files carry only a snsShankMap, from which
// positions are reconstructed using the probe catalog. The geometry map
// takes precedence when both are present.
func Resolve(m core.Meta) (*core.Geometry, error) {
	if m.Has(core.TagGeomMap) {
		return ParseGeomMap(m[core.TagGeomMap])
	}
	if m.Has(core.TagShankMap) {
		return fromShankMap(m)
	}
	return nil, core.ErrMissingGeometry
}

// fromShankMap reconstructs positions from row/column indices and the
// probe model's physical pitches.
func fromShankMap(m core.Meta) (*core.Geometry, error) {
	entries, err := parseShankMap(m[core.TagShankMap])
	if err != nil {
		return nil, err
	}

	// Some early metadata includes a SYNC entry in the shank map past the
	// AP channels; only the first AP-count entries are real electrodes.
	ap, _, _, err := m.ChannelCounts()
	if err != nil {
		return nil, err
	}
	if len(entries) < ap {
		return nil, fmt.Errorf("%s has %d entries for %d AP channels", core.TagShankMap, len(entries), ap)
	}
	entries = entries[:ap]

	pn := m.PartNumber()
	params, err := probe.Lookup(pn)
	if err != nil {
		return nil, err
	}

	g := &core.Geometry{
		PartNumber: pn,
		ShankCount: params.Shanks,
		ShankWidth: params.ShankWidth,
		ShankPitch: params.ShankPitch,
		Channels:   make([]core.ChannelGeometry, len(entries)),
	}
	for i, e := range entries {
		x := float64(e.col) * params.HorizPitch
		if e.row%2 == 0 {
			x += params.EvenRowXOff
		} else {
			x += params.OddRowXOff
		}
		g.Channels[i] = core.ChannelGeometry{
			Shank:     e.shank,
			X:         x,
			Y:         float64(e.row) * params.VertPitch,
			Connected: e.connected,
		}
	}
	return g, nil
}
