// Package geom resolves the physical geometry of saved channels from a
// metadata record, either by decoding an explicit snsGeomMap or by
// reconstructing positions from a snsShankMap and the probe catalog.
package geom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/meta"
)

// ParseGeomMap decodes a snsGeomMap value. The header is
// (partNumber,shankCount,shankPitch,shankWidth); each following group is
// one saved channel as (shank:x:y:connected), x and y possibly
// fractional. Channel x is local to its shank.
func ParseGeomMap(value string) (*core.Geometry, error) {
	groups, err := meta.ParenGroups(value)
	if err != nil {
		return nil, fmt.Errorf("malformed %s: %w", core.TagGeomMap, err)
	}

	header := strings.Split(groups[0], ",")
	if len(header) < 4 {
		return nil, fmt.Errorf("malformed %s header %q", core.TagGeomMap, groups[0])
	}
	g := &core.Geometry{PartNumber: strings.TrimSpace(header[0])}
	if g.ShankCount, err = strconv.Atoi(strings.TrimSpace(header[1])); err != nil {
		return nil, fmt.Errorf("bad shank count in %s header: %w", core.TagGeomMap, err)
	}
	if g.ShankPitch, err = strconv.ParseFloat(strings.TrimSpace(header[2]), 64); err != nil {
		return nil, fmt.Errorf("bad shank pitch in %s header: %w", core.TagGeomMap, err)
	}
	if g.ShankWidth, err = strconv.ParseFloat(strings.TrimSpace(header[3]), 64); err != nil {
		return nil, fmt.Errorf("bad shank width in %s header: %w", core.TagGeomMap, err)
	}

	g.Channels = make([]core.ChannelGeometry, len(groups)-1)
	for i, entry := range groups[1:] {
		f := strings.Split(entry, ":")
		if len(f) != 4 {
			return nil, fmt.Errorf("%s channel %d: expected 4 fields, got %d", core.TagGeomMap, i, len(f))
		}
		c := &g.Channels[i]
		if c.Shank, err = strconv.Atoi(f[0]); err != nil {
			return nil, fmt.Errorf("%s channel %d: bad shank index: %w", core.TagGeomMap, i, err)
		}
		if c.X, err = strconv.ParseFloat(f[1], 64); err != nil {
			return nil, fmt.Errorf("%s channel %d: bad x: %w", core.TagGeomMap, i, err)
		}
		if c.Y, err = strconv.ParseFloat(f[2], 64); err != nil {
			return nil, fmt.Errorf("%s channel %d: bad y: %w", core.TagGeomMap, i, err)
		}
		c.Connected = f[3] == "1"
	}
	return g, nil
}

// FormatGeomMap serializes a geometry back into snsGeomMap form, with x
// and y in shortest round-trip decimal. The inverse of [ParseGeomMap].
func FormatGeomMap(g *core.Geometry) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(g.PartNumber)
	b.WriteByte(',')
	b.WriteString(strconv.Itoa(g.ShankCount))
	b.WriteByte(',')
	b.WriteString(formatMicron(g.ShankPitch))
	b.WriteByte(',')
	b.WriteString(formatMicron(g.ShankWidth))
	b.WriteByte(')')
	for _, c := range g.Channels {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(c.Shank))
		b.WriteByte(':')
		b.WriteString(formatMicron(c.X))
		b.WriteByte(':')
		b.WriteString(formatMicron(c.Y))
		b.WriteByte(':')
		if c.Connected {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
		b.WriteByte(')')
	}
	return b.String()
}

// shankMapEntry is one saved channel of a snsShankMap:
// (shank:col:row:connected), all integers.
type shankMapEntry struct {
	shank     int
	col       int
	row       int
	connected bool
}

// parseShankMap decodes the per-channel entries of a snsShankMap value.
// The header (shank/col/row dimensions) is skipped; positions come from
// the probe catalog instead.
func parseShankMap(value string) ([]shankMapEntry, error) {
	groups, err := meta.ParenGroups(value)
	if err != nil {
		return nil, fmt.Errorf("malformed %s: %w", core.TagShankMap, err)
	}

	entries := make([]shankMapEntry, len(groups)-1)
	for i, entry := range groups[1:] {
		f := strings.Split(entry, ":")
		if len(f) != 4 {
			return nil, fmt.Errorf("%s channel %d: expected 4 fields, got %d", core.TagShankMap, i, len(f))
		}
		var vals [4]int
		for j, s := range f {
			if vals[j], err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("%s channel %d: bad field %q: %w", core.TagShankMap, i, s, err)
			}
		}
		entries[i] = shankMapEntry{
			shank:     vals[0],
			col:       vals[1],
			row:       vals[2],
			connected: vals[3] == 1,
		}
	}
	return entries, nil
}

// formatMicron renders a micron value in shortest round-trip form, so
// integral positions stay bare integers ("27", not "27.000000").
func formatMicron(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
