// Package grid implements detection and extraction of DevExpress
// ASPxGridView tables from parsed HTML documents.
//
// The package has three layers, leaves first:
//
//   - [Coerce] converts a single cell's text into the most specific scalar
//     type (int, float64, or string). It is total: any input that fails
//     numeric parsing is returned as the original string.
//
//   - [Extract] turns one candidate node into a [Grid]: column headers,
//     typed row records, and metadata (id, classes, data-* attributes) read
//     from the container element.
//
//   - [Locator.FindAll] scans a whole document for grid containers using a
//     union of independent marker predicates, collapses nested matches to
//     the outermost container, and extracts each survivor. A candidate
//     without any table structure is skipped and reported as a [Warning];
//     it never aborts the scan.
//
// # Markers
//
// Detection rules are data, not code: the recognized class substrings,
// framework class name, id substrings, and data-attribute prefixes live in a
// [Markers] value. [DefaultMarkers] carries the ASPxGridView set:
//
//	loc := grid.Locator{Markers: grid.DefaultMarkers()}
//	grids, warnings := loc.FindAll(root)
//
// # Coercion limitations
//
// Coercion is deliberately lossy in known ways: leading zeros are not
// preserved ("007" becomes 7) and locale thousands separators are not
// recognized ("1,000" stays a string). Callers that need the original text
// must keep the raw markup.
package grid
