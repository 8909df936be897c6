package probe

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/meta"
)

// legacy3AThreshold separates 3A-era probe type codes from everything
// later; 3A metadata encoded a serial-derived code in this field.
const legacy3AThreshold = 50000

// DeriveGainInfo reads the imroTbl tag and returns the AP/LF gain of the
// first readout channel plus the full-band flag. The imroTbl layout is
// versioned by the probe type code in its header:
//
//	> 50000   legacy 3A, 5 fields per channel, no filter column
//	"0"       NP1.0, 6 fields per channel, filter code in field 6
//	"21","24" NP2.0, fixed gain 80 and always full band
//	"1110"    UHD2, gains and filter in header fields 4-6
func DeriveGainInfo(m core.Meta) (core.GainInfo, error) {
	raw, ok := m[core.TagImroTbl]
	if !ok {
		return core.GainInfo{}, fmt.Errorf("metadata has no %s tag", core.TagImroTbl)
	}

	groups, err := meta.ParenGroups(raw)
	if err != nil {
		return core.GainInfo{}, fmt.Errorf("malformed %s: %w", core.TagImroTbl, err)
	}

	header := strings.Split(groups[0], ",")
	code := strings.TrimSpace(header[0])

	switch code {
	case "0":
		return np10GainInfo(groups[1:])
	case "21", "24":
		// NP2.0 has fixed gain and no AP filter.
		return core.GainInfo{APGain: 80, LFGain: 80, FullBand: true}, nil
	case "1110":
		return uhd2GainInfo(header)
	}

	if n, convErr := strconv.Atoi(code); convErr == nil && n > legacy3AThreshold {
		return legacy3AGainInfo(groups[1:])
	}

	return core.GainInfo{}, fmt.Errorf("%w: probe type code %q", core.ErrUnsupportedImro, code)
}

// legacy3AGainInfo reads a 5-field-per-channel 3A table. There is no
// filter column in this format, so FullBand is always false.
func legacy3AGainInfo(entries []string) (core.GainInfo, error) {
	fields, err := entryFields(entries, 5)
	if err != nil {
		return core.GainInfo{}, err
	}
	ap, lf, err := gainFields(fields[0])
	if err != nil {
		return core.GainInfo{}, err
	}
	return core.GainInfo{APGain: ap, LFGain: lf}, nil
}

// np10GainInfo reads a 6-field-per-channel NP1.0 table. Field 6 is the
// per-channel AP filter code; 0 means the highpass is off, so the probe
// is full band if any channel has code 0.
func np10GainInfo(entries []string) (core.GainInfo, error) {
	fields, err := entryFields(entries, 6)
	if err != nil {
		return core.GainInfo{}, err
	}
	ap, lf, err := gainFields(fields[0])
	if err != nil {
		return core.GainInfo{}, err
	}
	info := core.GainInfo{APGain: ap, LFGain: lf}
	for _, f := range fields {
		if strings.TrimSpace(f[5]) == "0" {
			info.FullBand = true
			break
		}
	}
	return info, nil
}

// uhd2GainInfo reads gains and the filter flag from the UHD2 (type 1110)
// header, which carries them globally instead of per channel.
func uhd2GainInfo(header []string) (core.GainInfo, error) {
	if len(header) < 6 {
		return core.GainInfo{}, fmt.Errorf("%w: type 1110 header has %d fields, need 6", core.ErrUnsupportedImro, len(header))
	}
	ap, err := strconv.ParseFloat(strings.TrimSpace(header[3]), 64)
	if err != nil {
		return core.GainInfo{}, fmt.Errorf("bad AP gain in imro header: %w", err)
	}
	lf, err := strconv.ParseFloat(strings.TrimSpace(header[4]), 64)
	if err != nil {
		return core.GainInfo{}, fmt.Errorf("bad LF gain in imro header: %w", err)
	}
	return core.GainInfo{
		APGain:   ap,
		LFGain:   lf,
		FullBand: strings.TrimSpace(header[5]) == "0",
	}, nil
}

// entryFields splits each per-channel entry into its space-separated
// fields and checks the field count for the format at hand.
func entryFields(entries []string, want int) ([][]string, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: table has no channel entries", core.ErrUnsupportedImro)
	}
	out := make([][]string, len(entries))
	for i, e := range entries {
		f := strings.Fields(e)
		if len(f) < want {
			return nil, fmt.Errorf("%w: channel entry %d has %d fields, need %d", core.ErrUnsupportedImro, i, len(f), want)
		}
		out[i] = f
	}
	return out, nil
}

// gainFields reads AP and LF gain from fields 4 and 5 (1-indexed) of a
// channel entry.
func gainFields(f []string) (ap, lf float64, err error) {
	ap, err = strconv.ParseFloat(f[3], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad AP gain %q: %w", f[3], err)
	}
	lf, err = strconv.ParseFloat(f[4], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad LF gain %q: %w", f[4], err)
	}
	return ap, lf, nil
}
