// Package dom provides the narrow set of node operations the grid parser
// needs from an HTML tree: tag and attribute access, class lists, collapsed
// text content, and ordered traversal. It wraps *html.Node from
// golang.org/x/net/html so the rest of the library never depends on more of
// the parser's surface than this.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// TagName returns the lower-cased tag name of an element node, or "" for
// non-element nodes.
func TagName(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return n.Data
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	if !IsElement(n) {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Classes returns the ordered class list of an element, split on whitespace.
// Elements without a class attribute yield nil.
func Classes(n *html.Node) []string {
	val, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(val)
}

// HasClass reports whether the element's class list contains name exactly.
func HasClass(n *html.Node, name string) bool {
	for _, c := range Classes(n) {
		if c == name {
			return true
		}
	}
	return false
}

// Walk visits n and every descendant element in document order. Returning
// false from fn prunes the subtree below the current node.
func Walk(n *html.Node, fn func(*html.Node) bool) {
	if n == nil {
		return
	}
	if IsElement(n) && !fn(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// FindAll returns every element in the subtree rooted at n, in document
// order, for which pred returns true.
func FindAll(n *html.Node, pred func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	Walk(n, func(e *html.Node) bool {
		if pred(e) {
			out = append(out, e)
		}
		return true
	})
	return out
}

// FindFirst returns the first element in document order matching pred, or
// nil if none matches.
func FindFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	var found *html.Node
	Walk(n, func(e *html.Node) bool {
		if found != nil {
			return false
		}
		if pred(e) {
			found = e
			return false
		}
		return true
	})
	return found
}

// ChildElements returns the direct child elements of n with the given tag
// names, in document order. With no names given, all child elements are
// returned.
func ChildElements(n *html.Node, names ...string) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !IsElement(c) {
			continue
		}
		if len(names) == 0 {
			out = append(out, c)
			continue
		}
		for _, name := range names {
			if c.Data == name {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// IsAncestor reports whether anc is a strict ancestor of n. Both arguments
// are compared by identity, never by content.
func IsAncestor(anc, n *html.Node) bool {
	if anc == nil || n == nil {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p == anc {
			return true
		}
	}
	return false
}

// Text returns the concatenated text content of the subtree rooted at n,
// with runs of whitespace collapsed to single spaces and the result trimmed.
// Script, style and similar non-content subtrees contribute nothing.
func Text(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if IsElement(n) && skipText(n.Data) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
	// Block boundaries separate words that the markup keeps apart.
	if IsElement(n) {
		switch n.Data {
		case "br", "p", "div", "li", "tr", "td", "th":
			sb.WriteString(" ")
		}
	}
}

// skipText returns true for elements whose text content is never document
// content.
func skipText(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}
