package core

import "errors"

// Common errors.
var (
	// ErrUnsupportedProbe means the probe part number is not in the
	// geometry catalog.
	ErrUnsupportedProbe = errors.New("unsupported probe part number")

	// ErrUnsupportedImro means the imroTbl probe-type code is not one of
	// the recognized formats.
	ErrUnsupportedImro = errors.New("unsupported imro table format")

	// ErrMissingGeometry means the metadata carries neither snsGeomMap
	// nor snsShankMap.
	ErrMissingGeometry = errors.New("metadata has no geometry map or shank map")
)
