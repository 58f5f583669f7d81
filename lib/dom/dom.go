// Package dom provides a headless HTML document for running the command
// engine without a browser: parsing, simple selector lookup, structural
// swaps, and serialization.
//
// Selector support is deliberately minimal - #id, .class and tag name -
// which covers what command streams use in practice. It is not a CSS engine.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse builds a Document from page markup. Incomplete markup is completed
// the way browsers do (html/head/body are synthesized as needed).
func Parse(src string) (*Document, error) {
	root, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// Body returns the document's body element.
func (d *Document) Body() *html.Node {
	return find(d.root, func(n *html.Node) bool {
		return n.DataAtom == atom.Body
	})
}

// Find resolves a selector against the document: "#id" matches by id
// attribute, ".class" by class list membership, anything else by tag name.
// The first match in document order wins.
func (d *Document) Find(selector string) (*html.Node, bool) {
	var match func(n *html.Node) bool
	switch {
	case strings.HasPrefix(selector, "#"):
		id := selector[1:]
		match = func(n *html.Node) bool { return attr(n, "id") == id }
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		match = func(n *html.Node) bool {
			for _, c := range strings.Fields(attr(n, "class")) {
				if c == class {
					return true
				}
			}
			return false
		}
	default:
		match = func(n *html.Node) bool { return n.Data == selector }
	}
	n := find(d.root, match)
	return n, n != nil
}

// Render serializes the whole document.
func (d *Document) Render() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, d.root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Text returns the concatenated text content of n's subtree.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func find(root *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && match(n) {
			found = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return found
}
