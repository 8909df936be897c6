package geom

import (
	"reflect"
	"testing"

	"github.com/ephysio/sglxcoords/pkg/core"
)

func TestParseGeomMap(t *testing.T) {
	g, err := ParseGeomMap("(NP2014,4,250,70)(0:27:0:1)(1:5.5:15:0)(3:59:9600:1)")
	if err != nil {
		t.Fatalf("ParseGeomMap() error = %v", err)
	}
	if g.PartNumber != "NP2014" {
		t.Errorf("PartNumber = %q, want NP2014", g.PartNumber)
	}
	if g.ShankCount != 4 || g.ShankPitch != 250 || g.ShankWidth != 70 {
		t.Errorf("header = (%d, %g, %g), want (4, 250, 70)", g.ShankCount, g.ShankPitch, g.ShankWidth)
	}
	want := []core.ChannelGeometry{
		{Shank: 0, X: 27, Y: 0, Connected: true},
		{Shank: 1, X: 5.5, Y: 15, Connected: false},
		{Shank: 3, X: 59, Y: 9600, Connected: true},
	}
	if !reflect.DeepEqual(g.Channels, want) {
		t.Errorf("Channels = %+v, want %+v", g.Channels, want)
	}
}

func TestParseGeomMapErrors(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"Short Header", "(NP2014,4)(0:27:0:1)"},
		{"Bad Shank Count", "(NP2014,x,250,70)(0:27:0:1)"},
		{"Wrong Field Count", "(NP2014,4,250,70)(0:27:0)"},
		{"Bad Coordinate", "(NP2014,4,250,70)(0:abc:0:1)"},
		{"Unclosed Group", "(NP2014,4,250,70)(0:27:0:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseGeomMap(tt.value); err == nil {
				t.Errorf("ParseGeomMap(%q) should fail", tt.value)
			}
		})
	}
}

// Serializing a geometry and parsing it back must be the identity, so
// augmented metadata can be consumed by the geometry-map path later.
func TestGeomMapRoundTrip(t *testing.T) {
	orig := &core.Geometry{
		PartNumber: "NP2014",
		ShankCount: 4,
		ShankWidth: 70,
		ShankPitch: 250,
		Channels: []core.ChannelGeometry{
			{Shank: 0, X: 27, Y: 0, Connected: true},
			{Shank: 1, X: 6.75, Y: 4.5, Connected: true},
			{Shank: 2, X: 10.25, Y: 9585, Connected: false},
			{Shank: 3, X: 59, Y: 15, Connected: true},
		},
	}

	got, err := ParseGeomMap(FormatGeomMap(orig))
	if err != nil {
		t.Fatalf("round trip parse error = %v", err)
	}
	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip = %+v, want %+v", got, orig)
	}
}

func TestFormatGeomMapShortestDecimal(t *testing.T) {
	g := &core.Geometry{
		PartNumber: "3A",
		ShankCount: 1,
		ShankWidth: 70,
		ShankPitch: 0,
		Channels:   []core.ChannelGeometry{{Shank: 0, X: 27, Y: 0, Connected: true}},
	}
	want := "(3A,1,0,70)(0:27:0:1)"
	if got := FormatGeomMap(g); got != want {
		t.Errorf("FormatGeomMap() = %q, want %q", got, want)
	}
}

func TestParseShankMap(t *testing.T) {
	entries, err := parseShankMap("(1,2,480)(0:0:0:1)(0:1:0:1)(0:0:1:0)")
	if err != nil {
		t.Fatalf("parseShankMap() error = %v", err)
	}
	want := []shankMapEntry{
		{shank: 0, col: 0, row: 0, connected: true},
		{shank: 0, col: 1, row: 0, connected: true},
		{shank: 0, col: 0, row: 1, connected: false},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("parseShankMap() = %+v, want %+v", entries, want)
	}

	if _, err := parseShankMap("(1,2,480)(0:0.5:0:1)"); err == nil {
		t.Error("fractional shank map fields should fail")
	}
}
