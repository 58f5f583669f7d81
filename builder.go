package hxcmd

import (
	"context"
	"encoding/json"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Cmd builds one wire-format command tag on the server side.
//
// Cmd is a fluent builder: setters return the builder so a command reads as
// one expression, and the result renders either as a string for transports
// like SSE or as a templ component for embedding in templates.
//
//	hxcmd.Update("#progress-text", hxcmd.SwapText, "42.5% / 100%").String()
//
//	hxcmd.NewCmd().
//	    Target("#frames").
//	    Swap(hxcmd.SwapText).
//	    Text(frame).
//	    Trigger("frame:shown", map[string]any{"index": i}).
//	    String()
type Cmd struct {
	attrs    []attrPair
	triggers [3]triggerSet
	body     string
}

type attrPair struct {
	name  string
	value string
}

// triggerSet accumulates events for one trigger-timing attribute.
type triggerSet struct {
	names []string
	data  map[string]map[string]any
}

func (ts *triggerSet) add(event string, data []map[string]any) {
	ts.names = append(ts.names, event)
	if len(data) > 0 {
		if ts.data == nil {
			ts.data = make(map[string]map[string]any)
		}
		ts.data[event] = data[0]
	}
}

// value renders the attribute value: a comma list when no event carries
// data, the JSON object form otherwise.
func (ts *triggerSet) value() string {
	if len(ts.data) == 0 {
		return strings.Join(ts.names, ",")
	}
	obj := make(map[string]any, len(ts.names))
	for _, name := range ts.names {
		if d, ok := ts.data[name]; ok {
			obj[name] = d
		} else {
			obj[name] = map[string]any{}
		}
	}
	out, _ := json.Marshal(obj)
	return string(out)
}

// Trigger timing slots.
const (
	triggerImmediate = iota
	triggerAfterSwap
	triggerAfterSettle
)

// NewCmd creates an empty command builder.
func NewCmd() *Cmd {
	return &Cmd{}
}

// Update creates a command that swaps content into target - the most common
// shape, one expression instead of three calls.
func Update(target string, mode SwapMode, text string) *Cmd {
	return NewCmd().Target(target).Swap(mode).Text(text)
}

// UpdateHTML is Update with a raw HTML payload.
func UpdateHTML(target string, mode SwapMode, markup string) *Cmd {
	return NewCmd().Target(target).Swap(mode).HTML(markup)
}

func (c *Cmd) set(name, value string) *Cmd {
	for i := range c.attrs {
		if c.attrs[i].name == name {
			c.attrs[i].value = value
			return c
		}
	}
	c.attrs = append(c.attrs, attrPair{name: name, value: value})
	return c
}

// Target sets the selector the swap applies to.
func (c *Cmd) Target(selector string) *Cmd {
	return c.set(AttrTarget, selector)
}

// Swap sets the swap mode. Omitting it leaves the client default (outerHTML).
func (c *Cmd) Swap(mode SwapMode) *Cmd {
	return c.set(AttrSwap, string(mode))
}

// Select sets the sub-selector applied to the swapped content.
func (c *Cmd) Select(selector string) *Cmd {
	return c.set(AttrSelect, selector)
}

// Redirect makes the client navigate to url, aborting the command's
// remaining directives.
func (c *Cmd) Redirect(url string) *Cmd {
	return c.set(AttrRedirect, url)
}

// Refresh makes the client reload the page.
func (c *Cmd) Refresh() *Cmd {
	return c.set(AttrRefresh, "")
}

// Location requests a fetch-and-swap navigation to path. Extra options are
// encoded into the JSON form of the attribute:
//
//	hxcmd.NewCmd().Location("/page/2")
//	hxcmd.NewCmd().Location("/page/2", map[string]any{"target": "#list"})
func (c *Cmd) Location(path string, opts ...map[string]any) *Cmd {
	if len(opts) == 0 || len(opts[0]) == 0 {
		return c.set(AttrLocation, path)
	}
	obj := make(map[string]any, len(opts[0])+1)
	for k, v := range opts[0] {
		obj[k] = v
	}
	obj["path"] = path
	out, _ := json.Marshal(obj)
	return c.set(AttrLocation, string(out))
}

// PushURL pushes url into browser history.
func (c *Cmd) PushURL(url string) *Cmd {
	return c.set(AttrPushURL, url)
}

// ReplaceURL replaces the current browser history entry with url.
func (c *Cmd) ReplaceURL(url string) *Cmd {
	return c.set(AttrReplaceURL, url)
}

// Trigger emits a client event when the command executes. Optional data
// becomes the event detail; a detail with a "target" key picks the dispatch
// element:
//
//	cmd.Trigger("playback:done")
//	cmd.Trigger("toast", map[string]any{"target": "#toasts", "level": "info"})
//
// Multiple triggers on the same command accumulate.
func (c *Cmd) Trigger(event string, data ...map[string]any) *Cmd {
	c.triggers[triggerImmediate].add(event, data)
	return c
}

// TriggerAfterSwap emits a client event once the command's swap completes.
func (c *Cmd) TriggerAfterSwap(event string, data ...map[string]any) *Cmd {
	c.triggers[triggerAfterSwap].add(event, data)
	return c
}

// TriggerAfterSettle emits a client event once the swapped content settles.
func (c *Cmd) TriggerAfterSettle(event string, data ...map[string]any) *Cmd {
	c.triggers[triggerAfterSettle].add(event, data)
	return c
}

// Text sets the payload as plain text, escaped for embedding in the tag.
func (c *Cmd) Text(s string) *Cmd {
	c.body = html.EscapeString(s)
	return c
}

// HTML sets the payload as raw markup. The caller is responsible for its
// well-formedness.
func (c *Cmd) HTML(markup string) *Cmd {
	c.body = markup
	return c
}

// String renders the wire-format command tag.
func (c *Cmd) String() string {
	var sb strings.Builder
	sb.WriteString("<" + TagName)
	for _, a := range c.attrs {
		sb.WriteString(" " + a.name + `="` + html.EscapeString(a.value) + `"`)
	}
	for i, attr := range [3]string{AttrTrigger, AttrTriggerAfterSwap, AttrTriggerAfterSettle} {
		if ts := &c.triggers[i]; len(ts.names) > 0 {
			sb.WriteString(" " + attr + `="` + html.EscapeString(ts.value()) + `"`)
		}
	}
	sb.WriteString(">")
	sb.WriteString(c.body)
	sb.WriteString("</" + TagName + ">")
	return sb.String()
}

// Component returns the command as a templ component for embedding in
// templates.
func (c *Cmd) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, c.String())
		return err
	})
}

// Batch groups commands delivered in one message. Commands execute on the
// client in the order they appear.
type Batch []*Cmd

// String renders the batch as one fragment.
func (b Batch) String() string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Component returns the batch as a templ component.
func (b Batch) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, b.String())
		return err
	})
}
