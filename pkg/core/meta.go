package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Metadata tags consumed by the geometry and gain derivations.
const (
	TagGeomMap    = "snsGeomMap"
	TagShankMap   = "snsShankMap"
	TagChanCounts = "snsApLfSy"
	TagPartNumber = "imDatPrb_pn"
	TagImroTbl    = "imroTbl"
)

// DefaultPartNumber is substituted when imDatPrb_pn is absent.
// Early 3A-era metadata never recorded a part number.
const DefaultPartNumber = "3A"

// Meta represents the key-value pairs of a SpikeGLX metadata file.
// Keys are the left-hand-side tags with any leading '~' stripped.
// It is read-only once loaded.
type Meta map[string]string

// Has reports whether the tag is present.
func (m Meta) Has(tag string) bool {
	_, ok := m[tag]
	return ok
}

// PartNumber returns the probe part number, or DefaultPartNumber when the
// metadata predates the imDatPrb_pn tag.
func (m Meta) PartNumber() string {
	if pn, ok := m[TagPartNumber]; ok {
		return pn
	}
	return DefaultPartNumber
}

// ChannelCounts returns the counts of AP, LF and SY channels that compose
// each timepoint in the recorded binary, from the snsApLfSy tag.
func (m Meta) ChannelCounts() (ap, lf, sy int, err error) {
	raw, ok := m[TagChanCounts]
	if !ok {
		return 0, 0, 0, fmt.Errorf("metadata has no %s tag", TagChanCounts)
	}
	fields := strings.Split(raw, ",")
	if len(fields) < 3 {
		return 0, 0, 0, fmt.Errorf("malformed %s value %q", TagChanCounts, raw)
	}
	counts := make([]int, 3)
	for i := 0; i < 3; i++ {
		counts[i], err = strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("malformed %s value %q: %w", TagChanCounts, raw, err)
		}
	}
	return counts[0], counts[1], counts[2], nil
}
