// Package probe holds the static per-probe-model knowledge: the geometry
// catalog used to reconstruct positions from a shank map, the imro table
// gain/filter derivation, and the canonical MUX tables.
//
// The value sets are closed and versioned by hardware generation, so they
// are plain package-level maps rather than any kind of registry.
package probe

import (
	"fmt"

	"github.com/ephysio/sglxcoords/pkg/core"
)

// GeomParams is the physical layout of one probe model. Offsets and
// pitches are in microns.
type GeomParams struct {
	Shanks       int
	ShankWidth   float64
	ShankPitch   float64
	EvenRowXOff  float64 // x offset applied to even rows
	OddRowXOff   float64 // x offset applied to odd rows
	HorizPitch   float64
	VertPitch    float64
	RowsPerShank int
	ElecPerShank int
}

// ColsPerShank returns the number of electrode columns on one shank.
// Always integral for catalog entries.
func (g GeomParams) ColsPerShank() int {
	return g.ElecPerShank / g.RowsPerShank
}

// Many part numbers share the same geometry; the distinct layouts are
// named after the probe families that introduced them.
var (
	np1Stag70um      = GeomParams{1, 70, 0, 27, 11, 32, 20, 480, 960}
	nhpLin70um       = GeomParams{1, 70, 0, 27, 27, 32, 20, 480, 960}
	nhpStag125umMed  = GeomParams{1, 125, 0, 27, 11, 87, 20, 1368, 2496}
	nhpStag125umLong = GeomParams{1, 125, 0, 27, 11, 87, 20, 2208, 4416}
	nhpLin125umMed   = GeomParams{1, 125, 0, 11, 11, 103, 20, 1368, 2496}
	nhpLin125umLong  = GeomParams{1, 125, 0, 11, 11, 103, 20, 2208, 4416}
	uhd8col1bank     = GeomParams{1, 70, 0, 14, 14, 6, 6, 48, 384}
	uhd8col16bank    = GeomParams{1, 70, 0, 14, 14, 6, 6, 768, 6144}
	np2SingleShank   = GeomParams{1, 70, 0, 27, 27, 32, 15, 640, 1280}
	np2FourShank     = GeomParams{4, 70, 250, 27, 27, 32, 15, 640, 1280}
	np1120           = GeomParams{1, 70, 0, 6.75, 6.75, 4.5, 4.5, 192, 384}
	np1121           = GeomParams{1, 70, 0, 6.25, 6.25, 3, 3, 384, 384}
	np1122           = GeomParams{1, 70, 0, 6.75, 6.75, 4.5, 4.5, 24, 384}
	np1123           = GeomParams{1, 70, 0, 10.25, 10.25, 3, 3, 32, 384}
	np1300           = GeomParams{1, 70, 0, 11, 11, 48, 20, 480, 960}
	np1200           = GeomParams{1, 70, 0, 27, 11, 32, 20, 64, 128}
	nxt3000          = GeomParams{1, 70, 0, 53, 53, 0, 15, 128, 128}
)

// catalog maps probe part numbers to their geometry. "3A" is the sentinel
// part number for legacy probes whose metadata has no imDatPrb_pn tag.
var catalog = map[string]GeomParams{
	"3A":               np1Stag70um,
	"PRB_1_4_0480_1":   np1Stag70um,
	"PRB_1_4_0480_1_C": np1Stag70um,
	"NP1010":           np1Stag70um,
	"NP1011":           np1Stag70um,
	"NP1012":           np1Stag70um,
	"NP1013":           np1Stag70um,

	"NP1015": nhpLin70um,
	"NP1016": nhpLin70um,
	"NP1017": nhpLin70um,

	"NP1020": nhpStag125umMed,
	"NP1021": nhpStag125umMed,
	"NP1030": nhpStag125umLong,
	"NP1031": nhpStag125umLong,

	"NP1022": nhpLin125umMed,
	"NP1032": nhpLin125umLong,

	"NP1100": uhd8col1bank,
	"NP1110": uhd8col16bank,

	"PRB2_1_4_0480_1": np2SingleShank,
	"PRB2_1_2_0640_0": np2SingleShank,
	"NP2000":          np2SingleShank,
	"NP2003":          np2SingleShank,
	"NP2004":          np2SingleShank,

	"PRB2_4_2_0640_0": np2FourShank,
	"NP2010":          np2FourShank,
	"NP2013":          np2FourShank,
	"NP2014":          np2FourShank,

	"NP1120": np1120,
	"NP1121": np1121,
	"NP1122": np1122,
	"NP1123": np1123,
	"NP1300": np1300,

	"NP1200":  np1200,
	"NXT3000": nxt3000,
}

// Lookup returns the geometry parameters for a probe part number.
func Lookup(partNumber string) (GeomParams, error) {
	g, ok := catalog[partNumber]
	if !ok {
		return GeomParams{}, fmt.Errorf("%w: %q", core.ErrUnsupportedProbe, partNumber)
	}
	return g, nil
}
