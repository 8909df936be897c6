// Package meta reads SpikeGLX metadata files into a core.Meta map.
//
// A metadata file is line-oriented: one "tag=value" pair per line, where
// some tags carry a leading '~' marking them as multi-line-capable in the
// acquisition software. The '~' is stripped so lookups match the tag names
// used by the MATLAB and Python tooling.
package meta

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ephysio/sglxcoords/pkg/core"
)

// Parse reads a stream of tag=value lines and decodes it into a Meta map.
// Lines without '=' and blank lines are skipped. Later duplicates of a tag
// overwrite earlier ones, matching the reference readers.
func Parse(r io.Reader) (core.Meta, error) {
	// Metadata files are a few tens of KB at most; read whole.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(core.Meta)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		tag, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		tag = strings.TrimPrefix(tag, "~")
		m[tag] = value
	}

	if len(m) == 0 {
		return nil, fmt.Errorf("no tag=value pairs found")
	}
	return m, nil
}

// ReadFile loads a metadata file from disk.
func ReadFile(path string) (core.Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse metadata %s: %w", path, err)
	}
	return m, nil
}
