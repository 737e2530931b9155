package grid

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/porcej/dxgridparser/dom"
)

// ErrMalformedGrid is returned by Extract when the candidate node carries no
// table structure at all: it has no table, row, or cell descendants and is
// not itself one. Markup that is merely inconsistent (missing cells, missing
// header row, empty body) is not malformed and extracts normally.
var ErrMalformedGrid = errors.New("grid: no extractable row or cell structure")

// Record is one extracted row, keyed by header name. When the grid has
// headers, every record holds exactly the header key set.
type Record = map[string]any

// Grid is one parsed ASPxGridView instance. It is populated once by Extract
// and read-only afterwards; callers must not modify its fields.
type Grid struct {
	// Headers are the column labels in document order. Empty when the
	// container holds no rows at all.
	Headers []string

	// Rows holds one Record per data row, in document order. Cell values are
	// coerced scalars: int, float64, or string.
	Rows []Record

	// Metadata describes the container element: "grid_id" (string, present
	// only when the element has an id), "classes" (ordered []string, present
	// only when the element has classes), and every data-* attribute
	// verbatim under its original name.
	Metadata map[string]any

	// SourceNode is the container element the grid was extracted from. It is
	// provenance only; the grid does not own or mutate it.
	SourceNode *html.Node
}

// Records returns a copy of the row data suitable for handing to a tabular
// collaborator (CSV writer, dataframe ingestion). The copy is independent:
// mutating it does not affect the Grid.
func (g *Grid) Records() []Record {
	out := make([]Record, len(g.Rows))
	for i, row := range g.Rows {
		rec := make(Record, len(row))
		for k, v := range row {
			rec[k] = v
		}
		out[i] = rec
	}
	return out
}

// RowCount returns the number of data rows.
func (g *Grid) RowCount() int { return len(g.Rows) }

// ColCount returns the number of columns.
func (g *Grid) ColCount() int { return len(g.Headers) }

func (g *Grid) String() string {
	return fmt.Sprintf("Grid(rows=%d, columns=%d)", len(g.Rows), len(g.Headers))
}

// Extract parses one candidate node into a Grid using the default
// ASPxGridView markers for header-row recognition.
func Extract(n *html.Node) (*Grid, error) {
	return ExtractWithMarkers(n, DefaultMarkers())
}

// ExtractWithMarkers parses one candidate node into a Grid.
//
// The node's id, classes, and data-* attributes become metadata. Headers are
// discovered by preference: the first <thead> row, else the first body row
// made up entirely of header-tagged cells (<th>, or cells/rows carrying a
// configured header class), else the first body row outright, whose cell
// text becomes the labels. Empty or duplicate labels are replaced with
// positional "Column N" labels so record keys stay unique.
//
// Rows shorter than the header are padded with empty strings; longer rows
// have their trailing extras dropped. Both are deliberate, deterministic
// handling of malformed markup, not errors.
//
// ExtractWithMarkers fails only with ErrMalformedGrid, when the node has no
// table structure to work with.
func ExtractWithMarkers(n *html.Node, m Markers) (*Grid, error) {
	if n == nil {
		return nil, fmt.Errorf("extracting grid: %w", ErrMalformedGrid)
	}

	g := &Grid{
		Metadata:   extractMetadata(n),
		SourceNode: n,
	}

	table := mainTable(n)
	if table == nil {
		return nil, fmt.Errorf("extracting <%s>: %w", dom.TagName(n), ErrMalformedGrid)
	}

	headerRow, bodyRows := splitRows(table, m)
	if headerRow == nil && len(bodyRows) > 0 {
		// No header markup anywhere: consume the first body row as labels.
		headerRow = bodyRows[0]
		bodyRows = bodyRows[1:]
	}

	if headerRow != nil {
		g.Headers = headerLabels(headerRow)
	}

	for _, tr := range bodyRows {
		if isHeaderRow(tr, m) {
			// Grids repeat header rows mid-table when paging; never data.
			continue
		}
		cells := dom.ChildElements(tr, "td")
		if len(cells) == 0 {
			// Empty filler row.
			continue
		}
		rec := make(Record, len(g.Headers))
		for i, h := range g.Headers {
			if i < len(cells) {
				rec[h] = Coerce(cellValue(cells[i]))
			} else {
				rec[h] = ""
			}
		}
		g.Rows = append(g.Rows, rec)
	}

	return g, nil
}

// extractMetadata reads id, class list, and data-* attributes from the
// container element. Absent attributes are omitted, never placeholders.
func extractMetadata(n *html.Node) map[string]any {
	meta := make(map[string]any)
	if id, ok := dom.Attr(n, "id"); ok && id != "" {
		meta["grid_id"] = id
	}
	if classes := dom.Classes(n); len(classes) > 0 {
		meta["classes"] = classes
	}
	if dom.IsElement(n) {
		for _, a := range n.Attr {
			if strings.HasPrefix(a.Key, "data-") {
				meta[a.Key] = a.Val
			}
		}
	}
	return meta
}

// mainTable locates the element whose rows will be parsed: the node itself
// if it is a table, else its first table descendant, else the node itself
// when it is or directly contains row/cell markup. Nil means the node is not
// a usable grid container.
//
// A bare row is usable: its cells become the header labels via the
// first-row fallback. A bare cell is usable but has no row structure to
// read, so it extracts to a metadata-only empty grid.
func mainTable(n *html.Node) *html.Node {
	if dom.TagName(n) == "table" {
		return n
	}
	if t := dom.FindFirst(n, func(e *html.Node) bool { return e.Data == "table" }); t != nil {
		return t
	}
	switch dom.TagName(n) {
	case "tr", "td", "th", "thead", "tbody":
		return n
	}
	if dom.FindFirst(n, func(e *html.Node) bool {
		switch e.Data {
		case "tr", "td", "th":
			return true
		}
		return false
	}) != nil {
		return n
	}
	return nil
}

// splitRows walks the table's sections and returns the header row (nil when
// no header markup exists) and the data rows in document order.
func splitRows(table *html.Node, m Markers) (headerRow *html.Node, bodyRows []*html.Node) {
	if dom.TagName(table) == "tr" {
		bodyRows = []*html.Node{table}
	}
	for _, c := range dom.ChildElements(table) {
		switch c.Data {
		case "thead":
			for _, tr := range dom.ChildElements(c, "tr") {
				if headerRow == nil {
					headerRow = tr
				} else {
					bodyRows = append(bodyRows, tr)
				}
			}
		case "tbody", "tfoot":
			bodyRows = append(bodyRows, dom.ChildElements(c, "tr")...)
		case "tr":
			bodyRows = append(bodyRows, c)
		}
	}

	if headerRow == nil {
		for i, tr := range bodyRows {
			if isHeaderRow(tr, m) {
				headerRow = tr
				bodyRows = append(bodyRows[:i:i], bodyRows[i+1:]...)
				break
			}
			// Only a leading header row is recognized; anything after data
			// rows is data.
			if len(dom.ChildElements(tr, "td")) > 0 {
				break
			}
		}
	}

	return headerRow, bodyRows
}

// isHeaderRow reports whether every cell of the row is header-tagged: a <th>
// element, or a cell (or the row itself) carrying one of the configured
// header class markers.
func isHeaderRow(tr *html.Node, m Markers) bool {
	cells := dom.ChildElements(tr, "td", "th")
	if len(cells) == 0 {
		return false
	}
	if hasHeaderClass(tr, m) {
		return true
	}
	for _, c := range cells {
		if c.Data == "th" || hasHeaderClass(c, m) {
			continue
		}
		return false
	}
	return true
}

func hasHeaderClass(n *html.Node, m Markers) bool {
	for _, class := range dom.Classes(n) {
		lower := strings.ToLower(class)
		for _, marker := range m.HeaderClassSubstrings {
			if strings.Contains(lower, marker) {
				return true
			}
		}
	}
	return false
}

// headerLabels extracts unique column labels from a header row. Empty and
// duplicate labels become positional "Column N" labels, advancing N past any
// real label that already claimed it; duplicates would otherwise silently
// collapse record keys.
func headerLabels(tr *html.Node) []string {
	cells := dom.ChildElements(tr, "th")
	if len(cells) == 0 {
		cells = dom.ChildElements(tr, "td")
	}

	labels := make([]string, 0, len(cells))
	seen := make(map[string]bool, len(cells))
	for i, c := range cells {
		label := dom.Text(c)
		if label == "" || seen[label] {
			n := i + 1
			label = fmt.Sprintf("Column %d", n)
			for seen[label] {
				n++
				label = fmt.Sprintf("Column %d", n)
			}
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

// cellValue returns the text value of a data cell. Editable grids render
// form controls inside cells, so an <input> value or the selected <option>
// takes precedence over the cell's own text.
func cellValue(cell *html.Node) string {
	if input := dom.FindFirst(cell, func(e *html.Node) bool { return e.Data == "input" }); input != nil {
		if val, ok := dom.Attr(input, "value"); ok && val != "" {
			return strings.TrimSpace(val)
		}
	}
	if sel := dom.FindFirst(cell, func(e *html.Node) bool { return e.Data == "select" }); sel != nil {
		if opt := dom.FindFirst(sel, func(e *html.Node) bool {
			_, selected := dom.Attr(e, "selected")
			return e.Data == "option" && selected
		}); opt != nil {
			return dom.Text(opt)
		}
	}
	return dom.Text(cell)
}
