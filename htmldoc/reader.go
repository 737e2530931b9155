// Package htmldoc loads HTML documents for grid extraction. It handles file
// and stream input, legacy character encodings, and <head> metadata, and
// hands the parsed tree to the grid package. It performs no fetching; where
// the bytes come from is the caller's concern.
package htmldoc

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/porcej/dxgridparser/dom"
	"github.com/porcej/dxgridparser/grid"
)

// Reader provides access to a parsed HTML document.
type Reader struct {
	root     *html.Node
	title    string
	metadata map[string]string
}

// Open opens and parses an HTML file. The encoding is sniffed from a BOM or
// <meta charset> declaration; legacy server-rendered pages are frequently
// windows-1252 rather than UTF-8.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from r, sniffing the character encoding.
func OpenReader(r io.Reader) (*Reader, error) {
	decoded, err := charset.NewReader(r, "")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}
	return parse(decoded)
}

// OpenReaderCharset parses HTML from r, decoding it with the named encoding
// (an IANA name such as "windows-1252" or "shift_jis") instead of sniffing.
// Use it when the transport layer already knows the page encoding.
func OpenReaderCharset(r io.Reader, name string) (*Reader, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("looking up charset %q: %w", name, err)
	}
	return parse(enc.NewDecoder().Reader(r))
}

func parse(r io.Reader) (*Reader, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		root:     root,
		metadata: make(map[string]string),
	}
	reader.extractHead(root)
	return reader, nil
}

// Close releases resources associated with the Reader. It exists to keep the
// reader lifecycle uniform with file-backed readers; nothing is held open.
func (r *Reader) Close() error {
	return nil
}

// Root returns the root of the parsed document tree. The tree must not be
// mutated while grid extraction is running against it.
func (r *Reader) Root() *html.Node {
	return r.root
}

// Title returns the document title, or "" when the document has none.
func (r *Reader) Title() string {
	return r.title
}

// Metadata returns the name/content pairs from the document's meta tags.
func (r *Reader) Metadata() map[string]string {
	return r.metadata
}

// Grids scans the document with the given markers and returns every
// extracted grid plus warnings for candidates that could not be parsed.
func (r *Reader) Grids(m grid.Markers) ([]*grid.Grid, []grid.Warning) {
	return grid.Locator{Markers: m}.FindAll(r.root)
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	head := dom.FindFirst(n, func(e *html.Node) bool { return e.Data == "head" })
	if head == nil {
		return
	}

	for _, c := range dom.ChildElements(head) {
		switch c.Data {
		case "title":
			r.title = dom.Text(c)
		case "meta":
			name, content := "", ""
			for _, attr := range c.Attr {
				switch attr.Key {
				case "name", "property":
					name = attr.Val
				case "content":
					content = attr.Val
				}
			}
			if name != "" && content != "" {
				r.metadata[name] = content
			}
		}
	}
}
