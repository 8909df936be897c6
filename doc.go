// Package sglxcoords derives recording-channel geometry from SpikeGLX
// metadata files and exports it for analysis tools.
//
// A SpikeGLX .meta sidecar describes which electrodes of a Neuropixels
// probe were saved to disk. Current metadata carries an explicit geometry
// table (~snsGeomMap); older files carry only a row/column shank map
// (~snsShankMap), from which positions are reconstructed using a built-in
// catalog of per-probe-model physical constants.
//
// Supported outputs:
//
//   - tab-delimited coordinate table (index, x, y, shank)
//   - Kilosort channel map (JSON or YAML)
//   - JRClust .prm parameter snippet
//   - an upgraded copy of the metadata itself, with gain, MUX table and
//     geometry lines appended (for converting shank-map-era files)
//   - NumPy coordinate matrix for YASS-style sorters
//
// Usage:
//
//	g, err := sglxcoords.MetaToCoords("run1_g0_t0.imec0.ap.meta",
//		sglxcoords.OutKilosort,
//		sglxcoords.WithLogger(logger),
//	)
//
// The sglxcoords CLI under cmd/sglxcoords wraps the same pipeline with
// single-file, batch-glob and directory-watch front ends.
package sglxcoords
