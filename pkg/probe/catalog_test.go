package probe

import (
	"errors"
	"testing"

	"github.com/ephysio/sglxcoords/pkg/core"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		pn         string
		wantShanks int
		wantPitch  float64
		wantEven   float64
		wantOdd    float64
	}{
		{"3A", 1, 0, 27, 11},
		{"NP1012", 1, 0, 27, 11},  // same layout as 3A
		{"NP1015", 1, 0, 27, 27},  // linear, no stagger
		{"NP2014", 4, 250, 27, 27},
		{"NXT3000", 1, 0, 53, 53},
	}

	for _, tt := range tests {
		t.Run(tt.pn, func(t *testing.T) {
			g, err := Lookup(tt.pn)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.pn, err)
			}
			if g.Shanks != tt.wantShanks {
				t.Errorf("Shanks = %d, want %d", g.Shanks, tt.wantShanks)
			}
			if g.ShankPitch != tt.wantPitch {
				t.Errorf("ShankPitch = %g, want %g", g.ShankPitch, tt.wantPitch)
			}
			if g.EvenRowXOff != tt.wantEven || g.OddRowXOff != tt.wantOdd {
				t.Errorf("offsets = (%g, %g), want (%g, %g)", g.EvenRowXOff, g.OddRowXOff, tt.wantEven, tt.wantOdd)
			}
		})
	}
}

func TestLookupUnsupported(t *testing.T) {
	_, err := Lookup("NP9999")
	if !errors.Is(err, core.ErrUnsupportedProbe) {
		t.Errorf("Lookup(NP9999) error = %v, want ErrUnsupportedProbe", err)
	}
}

func TestColsPerShank(t *testing.T) {
	tests := []struct {
		pn   string
		want int
	}{
		{"3A", 2},      // 960 electrodes / 480 rows
		{"NP1100", 8},  // UHD 8-column
		{"NP2000", 2},  // 1280 / 640
		{"NXT3000", 1}, // single column
	}
	for _, tt := range tests {
		g, err := Lookup(tt.pn)
		if err != nil {
			t.Fatalf("Lookup(%q) error = %v", tt.pn, err)
		}
		if got := g.ColsPerShank(); got != tt.want {
			t.Errorf("ColsPerShank(%s) = %d, want %d", tt.pn, got, tt.want)
		}
	}
}

// Every cataloged probe must have integral columns and a full grid.
func TestCatalogConsistency(t *testing.T) {
	for pn, g := range catalog {
		if g.RowsPerShank <= 0 || g.ElecPerShank <= 0 {
			t.Errorf("%s: non-positive electrode counts", pn)
			continue
		}
		if g.ElecPerShank%g.RowsPerShank != 0 {
			t.Errorf("%s: %d electrodes not divisible by %d rows", pn, g.ElecPerShank, g.RowsPerShank)
		}
	}
}
