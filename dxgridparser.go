// Package dxgridparser provides a fluent API for extracting DevExpress
// ASPxGridView tables from server-rendered HTML into structured records.
//
// Basic usage:
//
//	grids, warnings, err := dxgridparser.Open("report.html").Grids()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dxgridparser.FormatWarnings(warnings))
//	}
//	for _, g := range grids {
//	    records := g.Records() // []map[string]any, one per row
//	}
//
// With options:
//
//	grids, _, err := dxgridparser.FromReader(resp.Body).
//	    Charset("windows-1252").
//	    Markers(customMarkers).
//	    Grids()
//
// For finer control, the lower-level grid and htmldoc packages are also
// available.
package dxgridparser

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/porcej/dxgridparser/grid"
	"github.com/porcej/dxgridparser/htmldoc"
)

// ErrNoGrids is returned by First when the document contains no extractable
// grids.
var ErrNoGrids = errors.New("dxgridparser: no grids found")

// Extractor accumulates configuration between an input source and a terminal
// operation such as Grids.
type Extractor struct {
	filename string
	reader   io.Reader
	node     *html.Node
	options  ExtractOptions
}

// Open prepares an HTML file for grid extraction. The file is read when a
// terminal operation runs.
//
// Example:
//
//	grids, warnings, err := dxgridparser.Open("report.html").Grids()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromReader prepares an HTML stream for grid extraction. The reader is
// consumed by the first terminal operation; the caller retains ownership of
// any underlying file handle.
func FromReader(r io.Reader) *Extractor {
	return &Extractor{
		reader:  r,
		options: defaultOptions(),
	}
}

// FromNode prepares an already-parsed document (or subtree) for grid
// extraction. The tree must not be mutated while extraction runs; the
// extractor itself never writes to it.
func FromNode(n *html.Node) *Extractor {
	return &Extractor{
		node:    n,
		options: defaultOptions(),
	}
}

// Markers replaces the marker set used to recognize grid containers.
func (e *Extractor) Markers(m grid.Markers) *Extractor {
	opts := e.options.clone()
	opts.markers = m
	return &Extractor{filename: e.filename, reader: e.reader, node: e.node, options: opts}
}

// Charset forces the named character encoding (an IANA name such as
// "windows-1252") instead of sniffing. It has no effect with FromNode.
func (e *Extractor) Charset(name string) *Extractor {
	opts := e.options.clone()
	opts.charsetName = name
	return &Extractor{filename: e.filename, reader: e.reader, node: e.node, options: opts}
}

// Grids is the terminal operation: it loads the input if needed, scans it,
// and returns every extracted grid in document order. Warnings describe
// candidate containers that matched the markers but had no table structure;
// they do not make the scan fail.
func (e *Extractor) Grids() ([]*grid.Grid, []grid.Warning, error) {
	root, err := e.root()
	if err != nil {
		return nil, nil, err
	}
	grids, warnings := grid.Locator{Markers: e.options.markers}.FindAll(root)
	return grids, warnings, nil
}

// First returns the first grid in document order, or ErrNoGrids when the
// document has none.
func (e *Extractor) First() (*grid.Grid, []grid.Warning, error) {
	grids, warnings, err := e.Grids()
	if err != nil {
		return nil, warnings, err
	}
	if len(grids) == 0 {
		return nil, warnings, ErrNoGrids
	}
	return grids[0], warnings, nil
}

// root resolves the configured input to a parsed document root.
func (e *Extractor) root() (*html.Node, error) {
	if e.node != nil {
		return e.node, nil
	}

	var (
		r   *htmldoc.Reader
		err error
	)
	switch {
	case e.reader != nil && e.options.charsetName != "":
		r, err = htmldoc.OpenReaderCharset(e.reader, e.options.charsetName)
	case e.reader != nil:
		r, err = htmldoc.OpenReader(e.reader)
	default:
		r, err = htmldoc.Open(e.filename)
	}
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Root(), nil
}

// Must is a helper that wraps a call to a function returning (T, error) and
// panics if the error is non-nil. It is intended for scripts or tests where
// error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustGrids wraps a call to Grids or First, panics on error, and discards
// warnings.
//
// Example:
//
//	grids := dxgridparser.MustGrids(dxgridparser.Open("report.html").Grids())
func MustGrids[T any](val T, _ []grid.Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// FormatWarnings renders warnings as a single human-readable string, one
// warning per line.
func FormatWarnings(warnings []grid.Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
