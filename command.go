package hxcmd

import (
	"strings"

	"golang.org/x/net/html"
)

// TagName is the element name that marks a server command in a fragment.
const TagName = "htmx"

// Attr is an optional command attribute. Set distinguishes an absent
// attribute from one present with an empty value - refresh relies on that
// distinction (bare presence reloads, value "false" does not).
type Attr struct {
	Value string
	Set   bool
}

// Or returns the attribute value, or def when the attribute is absent.
func (a Attr) Or(def string) string {
	if a.Set {
		return a.Value
	}
	return def
}

// Command is one parsed command tag.
//
// A Command is built exactly once from its source element and is a plain
// value afterwards: validation and execution never go back to the node's
// live attribute list. All recognized attributes are enumerated as optional
// fields; names outside the vocabulary are retained in Unknown so the
// validator can report them.
type Command struct {
	Target             Attr
	Swap               Attr
	Select             Attr
	Redirect           Attr
	Refresh            Attr
	Location           Attr
	PushURL            Attr
	ReplaceURL         Attr
	Trigger            Attr
	TriggerAfterSwap   Attr
	TriggerAfterSettle Attr

	// Unknown holds attribute names outside the recognized vocabulary,
	// in source order.
	Unknown []string

	// Content is the serialized inner markup of the tag - the payload for
	// any swap the command requests.
	Content string

	node *html.Node
}

// ParseCommand builds a Command from a command element.
//
// The node's attributes are read once into the record and its children are
// serialized into Content. The node itself is retained only as an opaque
// reference for events.
func ParseCommand(n *html.Node) *Command {
	cmd := &Command{node: n}
	for _, a := range n.Attr {
		v := Attr{Value: a.Val, Set: true}
		switch a.Key {
		case AttrTarget:
			cmd.Target = v
		case AttrSwap:
			cmd.Swap = v
		case AttrSelect:
			cmd.Select = v
		case AttrRedirect:
			cmd.Redirect = v
		case AttrRefresh:
			cmd.Refresh = v
		case AttrLocation:
			cmd.Location = v
		case AttrPushURL:
			cmd.PushURL = v
		case AttrReplaceURL:
			cmd.ReplaceURL = v
		case AttrTrigger:
			cmd.Trigger = v
		case AttrTriggerAfterSwap:
			cmd.TriggerAfterSwap = v
		case AttrTriggerAfterSettle:
			cmd.TriggerAfterSettle = v
		default:
			cmd.Unknown = append(cmd.Unknown, a.Key)
		}
	}
	cmd.Content = innerHTML(n)
	return cmd
}

// Node returns the source element the command was parsed from. The node is
// detached from its fragment once preprocessing completes; it is carried in
// events so listeners can inspect the original tag.
func (c *Command) Node() *html.Node {
	return c.node
}

// Recognized reports whether the command carries at least one recognized
// attribute.
func (c *Command) Recognized() bool {
	for _, a := range []Attr{
		c.Target, c.Swap, c.Select, c.Redirect, c.Refresh, c.Location,
		c.PushURL, c.ReplaceURL, c.Trigger, c.TriggerAfterSwap, c.TriggerAfterSettle,
	} {
		if a.Set {
			return true
		}
	}
	return false
}

// Outline renders the command's opening tag on one line, used in validation
// errors to identify the offending tag without dumping its payload.
func (c *Command) Outline() string {
	var sb strings.Builder
	sb.WriteString("<" + TagName)
	if c.node != nil {
		for _, a := range c.node.Attr {
			sb.WriteString(" " + a.Key + `="` + a.Val + `"`)
		}
	}
	sb.WriteString(">")
	return sb.String()
}

// innerHTML serializes the children of n.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		// Render only fails on unrenderable node kinds, which cannot
		// appear under a parsed fragment element.
		_ = html.Render(&sb, child)
	}
	return sb.String()
}
