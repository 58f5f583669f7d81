package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ApplySwap mutates the tree, replacing or merging content at target
// according to the swap mode string (outerHTML, innerHTML, textContent,
// beforebegin, afterbegin, beforeend, afterend, delete, none).
//
// Content is parsed as a fragment in the target's context except for
// textContent, which inserts a single text node verbatim.
func ApplySwap(target *html.Node, content, mode string) error {
	switch mode {
	case "", "outerHTML":
		nodes, err := parseInContext(content, target.Parent)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.Parent.InsertBefore(n, target)
		}
		target.Parent.RemoveChild(target)

	case "innerHTML":
		nodes, err := parseInContext(content, target)
		if err != nil {
			return err
		}
		removeChildren(target)
		for _, n := range nodes {
			target.AppendChild(n)
		}

	case "textContent":
		// Content arrives as serialized markup; entities become the
		// literal characters they encode.
		removeChildren(target)
		target.AppendChild(&html.Node{Type: html.TextNode, Data: html.UnescapeString(content)})

	case "beforebegin":
		nodes, err := parseInContext(content, target.Parent)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.Parent.InsertBefore(n, target)
		}

	case "afterbegin":
		nodes, err := parseInContext(content, target)
		if err != nil {
			return err
		}
		ref := target.FirstChild
		for _, n := range nodes {
			target.InsertBefore(n, ref)
		}

	case "beforeend":
		nodes, err := parseInContext(content, target)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			target.AppendChild(n)
		}

	case "afterend":
		nodes, err := parseInContext(content, target.Parent)
		if err != nil {
			return err
		}
		ref := target.NextSibling
		for _, n := range nodes {
			target.Parent.InsertBefore(n, ref)
		}

	case "delete":
		target.Parent.RemoveChild(target)

	case "none":

	default:
		return fmt.Errorf("dom: unsupported swap mode %q", mode)
	}
	return nil
}

func parseInContext(content string, context *html.Node) ([]*html.Node, error) {
	return html.ParseFragment(strings.NewReader(content), context)
}

func removeChildren(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}
