package grid

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/porcej/dxgridparser/dom"
)

// Warning records a candidate node that matched the grid markers but could
// not be extracted. The scan continues past it; a page with one broken grid
// still yields every other grid.
type Warning struct {
	Node *html.Node
	Err  error
}

func (w Warning) String() string {
	tag := dom.TagName(w.Node)
	if id, ok := dom.Attr(w.Node, "id"); ok && id != "" {
		return fmt.Sprintf("<%s id=%q>: %v", tag, id, w.Err)
	}
	return fmt.Sprintf("<%s>: %v", tag, w.Err)
}

// Locator finds every grid container in a document using the configured
// marker set. The zero value is not useful; populate Markers, typically with
// DefaultMarkers.
type Locator struct {
	Markers Markers
}

// FindAll scans the subtree rooted at root and extracts one Grid per
// outermost candidate container, in document order.
//
// Candidates are collected by a union of independent marker rules (class
// substring, framework class, id substring, table data attributes). Nested
// matches collapse to the outermost container, compared by node identity, so
// a grid's inner table or rows never produce duplicate grids.
//
// A nil or grid-free root yields an empty result. Candidates without table
// structure are skipped and reported as warnings; they never abort the scan.
func (l Locator) FindAll(root *html.Node) ([]*Grid, []Warning) {
	candidates := l.candidates(root)
	if len(candidates) == 0 {
		return nil, nil
	}

	inSet := make(map[*html.Node]bool, len(candidates))
	for _, c := range candidates {
		inSet[c] = true
	}

	var (
		grids    []*Grid
		warnings []Warning
	)
	for _, c := range candidates {
		if hasCandidateAncestor(c, inSet) {
			continue
		}
		g, err := ExtractWithMarkers(c, l.Markers)
		if err != nil {
			warnings = append(warnings, Warning{Node: c, Err: err})
			continue
		}
		grids = append(grids, g)
	}
	return grids, warnings
}

// candidates returns every element matching at least one marker rule, in
// document order.
func (l Locator) candidates(root *html.Node) []*html.Node {
	if root == nil {
		return nil
	}
	return dom.FindAll(root, l.Markers.IsCandidate)
}

// hasCandidateAncestor walks the parent chain by identity.
func hasCandidateAncestor(n *html.Node, set map[*html.Node]bool) bool {
	for p := n.Parent; p != nil; p = p.Parent {
		if set[p] {
			return true
		}
	}
	return false
}

// IsCandidate reports whether the element matches any of the marker rules.
// The rules are independent predicates combined by union.
func (m Markers) IsCandidate(n *html.Node) bool {
	return m.MatchClassSubstring(n) ||
		m.MatchFrameworkClass(n) ||
		m.MatchID(n) ||
		m.MatchDataAttr(n)
}

// MatchClassSubstring reports whether any class name contains one of the
// widget-family substrings. The comparison is case-sensitive: DevExpress
// emits its dxgv* classes with fixed casing.
func (m Markers) MatchClassSubstring(n *html.Node) bool {
	for _, class := range dom.Classes(n) {
		for _, sub := range m.ClassSubstrings {
			if strings.Contains(class, sub) {
				return true
			}
		}
	}
	return false
}

// MatchFrameworkClass reports whether any class name equals one of the
// framework marker classes, ignoring ASCII case.
func (m Markers) MatchFrameworkClass(n *html.Node) bool {
	for _, class := range dom.Classes(n) {
		for _, name := range m.FrameworkClasses {
			if strings.EqualFold(class, name) {
				return true
			}
		}
	}
	return false
}

// MatchID reports whether the id attribute contains, case-insensitively,
// one of the recognized grid-identifier substrings.
func (m Markers) MatchID(n *html.Node) bool {
	id, ok := dom.Attr(n, "id")
	if !ok || id == "" {
		return false
	}
	lower := strings.ToLower(id)
	for _, sub := range m.IDSubstrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

// MatchDataAttr reports whether a table element carries an attribute whose
// name starts with one of the recognized data-attribute prefixes.
func (m Markers) MatchDataAttr(n *html.Node) bool {
	if dom.TagName(n) != "table" {
		return false
	}
	for _, a := range n.Attr {
		for _, prefix := range m.DataAttrPrefixes {
			if strings.HasPrefix(a.Key, prefix) {
				return true
			}
		}
	}
	return false
}

// FindAllGrids scans root with the default ASPxGridView markers and discards
// warnings. It is the convenience entry point for the common case.
func FindAllGrids(root *html.Node) []*Grid {
	grids, _ := Locator{Markers: DefaultMarkers()}.FindAll(root)
	return grids
}
