package dxgridparser

import (
	"github.com/porcej/dxgridparser/grid"
)

// ExtractOptions holds configuration for grid extraction.
type ExtractOptions struct {
	// Marker set used to recognize grid containers.
	markers grid.Markers

	// Forced character encoding (IANA name); "" means sniff.
	charsetName string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		markers:     grid.DefaultMarkers(),
		charsetName: "",
	}
}

// clone creates a copy of ExtractOptions with independent marker slices.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		charsetName: o.charsetName,
	}
	newOpts.markers = grid.Markers{
		ClassSubstrings:       append([]string(nil), o.markers.ClassSubstrings...),
		FrameworkClasses:      append([]string(nil), o.markers.FrameworkClasses...),
		IDSubstrings:          append([]string(nil), o.markers.IDSubstrings...),
		DataAttrPrefixes:      append([]string(nil), o.markers.DataAttrPrefixes...),
		HeaderClassSubstrings: append([]string(nil), o.markers.HeaderClassSubstrings...),
	}
	return newOpts
}
