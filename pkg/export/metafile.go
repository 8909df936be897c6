package export

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/geom"
)

// origSuffix replaces the ".meta" extension of the backup that preserves
// the pre-augmentation file.
const origSuffix = "_orig.meta"

// writeMetaFile is swapped out in tests to exercise the write-failure path.
var writeMetaFile = writeFileAtomic

// Augment upgrades a shank-map-era metadata file in place. The original
// file is renamed to <base>_orig.meta, and a new file is written at the
// original name holding the original content plus five appended lines:
//
//	imChan0apGain=...
//	imChan0lfGain=...
//	imAnyChanFullBand=...
//	~muxTbl=...
//	~snsGeomMap=...
//
// The backup keeps the original bytes untouched, so the operation is
// reversible by renaming it back.
func Augment(metaPath string, g *core.Geometry, info core.GainInfo, mux string) error {
	if !strings.HasSuffix(metaPath, ".meta") {
		return fmt.Errorf("not a metadata file: %s", metaPath)
	}

	orig, err := os.ReadFile(metaPath)
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	backupPath := strings.TrimSuffix(metaPath, ".meta") + origSuffix
	if err := os.Rename(metaPath, backupPath); err != nil {
		return fmt.Errorf("failed to back up metadata: %w", err)
	}

	var buf bytes.Buffer
	buf.Write(orig)
	if len(orig) > 0 && orig[len(orig)-1] != '\n' {
		buf.WriteByte('\n')
	}
	fullBand := 0
	if info.FullBand {
		fullBand = 1
	}
	fmt.Fprintf(&buf, "imChan0apGain=%g\n", info.APGain)
	fmt.Fprintf(&buf, "imChan0lfGain=%g\n", info.LFGain)
	fmt.Fprintf(&buf, "imAnyChanFullBand=%d\n", fullBand)
	fmt.Fprintf(&buf, "~muxTbl=%s\n", mux)
	fmt.Fprintf(&buf, "~snsGeomMap=%s\n", geom.FormatGeomMap(g))

	if err := writeMetaFile(metaPath, buf.Bytes(), 0644); err != nil {
		// Put the original back so a failed augmentation leaves the
		// recording with its metadata at the expected path.
		if rerr := os.Rename(backupPath, metaPath); rerr != nil {
			return fmt.Errorf("failed to write augmented metadata (original left at %s): %w", backupPath, err)
		}
		return fmt.Errorf("failed to write augmented metadata: %w", err)
	}
	return nil
}

// LFSibling returns the path of the low-frequency companion of an AP
// metadata file (".ap." replaced by ".lf.") and whether it exists on
// disk. AP and LF files of one recording share their probe geometry.
func LFSibling(apPath string) (string, bool) {
	idx := strings.LastIndex(apPath, ".ap.")
	if idx < 0 {
		return "", false
	}
	lfPath := apPath[:idx] + ".lf." + apPath[idx+len(".ap."):]
	if _, err := os.Stat(lfPath); err != nil {
		return "", false
	}
	return lfPath, true
}
