package export

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ephysio/sglxcoords/pkg/core"
	"github.com/ephysio/sglxcoords/pkg/geom"
)

func TestAugment(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "run1_g0_t0.imec0.ap.meta")
	original := "snsApLfSy=384,384,1\n~snsShankMap=(1,2,480)(0:0:0:1)\n"
	require.NoError(t, os.WriteFile(metaPath, []byte(original), 0644))

	g := fourShankGeometry()
	info := core.GainInfo{APGain: 500, LFGain: 250, FullBand: true}
	mux := "(2,2)(0 1)(2 3)"
	require.NoError(t, Augment(metaPath, g, info, mux))

	// The backup preserves the original bytes exactly.
	backup, err := os.ReadFile(filepath.Join(dir, "run1_g0_t0.imec0.ap_orig.meta"))
	require.NoError(t, err)
	assert.Equal(t, original, string(backup))

	// The new file is the backup content plus exactly five lines.
	augmented, err := os.ReadFile(metaPath)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(augmented), original))

	extra := strings.TrimPrefix(string(augmented), original)
	lines := strings.Split(strings.TrimSuffix(extra, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "imChan0apGain=500", lines[0])
	assert.Equal(t, "imChan0lfGain=250", lines[1])
	assert.Equal(t, "imAnyChanFullBand=1", lines[2])
	assert.Equal(t, "~muxTbl="+mux, lines[3])
	assert.Equal(t, "~snsGeomMap="+geom.FormatGeomMap(g), lines[4])
}

// A file without a trailing newline must still get well-formed appended
// lines.
func TestAugmentAddsMissingNewline(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "probe.ap.meta")
	require.NoError(t, os.WriteFile(metaPath, []byte("a=1"), 0644))

	require.NoError(t, Augment(metaPath, fourShankGeometry(), core.GainInfo{}, ""))

	augmented, err := os.ReadFile(metaPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(augmented), "a=1\nimChan0apGain=0\n"))
	assert.Equal(t, "imAnyChanFullBand=0", strings.Split(string(augmented), "\n")[3])
}

// A failed write must restore the original file from the backup so the
// recording keeps its metadata at the expected path.
func TestAugmentRestoresBackupOnWriteFailure(t *testing.T) {
	dir := t.TempDir()
	metaPath := filepath.Join(dir, "run1_g0_t0.imec0.ap.meta")
	original := "a=1\n"
	require.NoError(t, os.WriteFile(metaPath, []byte(original), 0644))

	writeMetaFile = func(string, []byte, os.FileMode) error {
		return errors.New("disk full")
	}
	defer func() { writeMetaFile = writeFileAtomic }()

	require.Error(t, Augment(metaPath, fourShankGeometry(), core.GainInfo{}, ""))

	got, err := os.ReadFile(metaPath)
	require.NoError(t, err)
	assert.Equal(t, original, string(got))

	_, err = os.Stat(filepath.Join(dir, "run1_g0_t0.imec0.ap_orig.meta"))
	assert.True(t, os.IsNotExist(err), "backup should have been renamed back")
}

func TestAugmentRejectsNonMeta(t *testing.T) {
	require.Error(t, Augment("notes.txt", fourShankGeometry(), core.GainInfo{}, ""))
}

func TestLFSibling(t *testing.T) {
	dir := t.TempDir()
	ap := filepath.Join(dir, "run1_g0_t0.imec0.ap.meta")
	lf := filepath.Join(dir, "run1_g0_t0.imec0.lf.meta")

	_, ok := LFSibling(ap)
	assert.False(t, ok, "no sibling on disk yet")

	require.NoError(t, os.WriteFile(lf, []byte("x=1\n"), 0644))
	got, ok := LFSibling(ap)
	require.True(t, ok)
	assert.Equal(t, lf, got)

	_, ok = LFSibling(filepath.Join(dir, "plain.meta"))
	assert.False(t, ok, "no .ap. segment to swap")
}
