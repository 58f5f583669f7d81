package dom

import (
	"golang.org/x/net/html"

	"github.com/pthm/hxcmd"
)

// HistoryOp is one recorded browser-history mutation.
type HistoryOp struct {
	Op  string // "save", "push", "replace"
	URL string
}

// Page is a headless page: a Document plus the hxcmd.Host, hxcmd.History and
// hxcmd.Navigator collaborators, suitable for driving the engine outside a
// browser (terminal replay, server-side tests).
//
// History mutations, redirects and reloads are recorded rather than acted
// on; navigation fetches go through the pluggable Fetch func. Swap
// completion callbacks fire synchronously - the headless page has no settle
// phase, so after-swap and after-settle collapse into one moment.
//
// A Page follows the engine's single-threaded model and is not safe for
// concurrent use.
type Page struct {
	Doc *Document

	// Fetch serves location-directive navigations. When nil, navigations
	// record the path and complete without content.
	Fetch func(path string, opts map[string]any) (string, error)

	// History holds recorded history mutations in order.
	History []HistoryOp

	// Redirects and Reloads record redirect/refresh directives.
	Redirects []string
	Reloads   int

	// Navigations records location-directive paths in order.
	Navigations []string

	listeners map[string][]func(*hxcmd.Event)
}

// NewPage parses page markup into a headless Page.
func NewPage(src string) (*Page, error) {
	doc, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return &Page{Doc: doc, listeners: make(map[string][]func(*hxcmd.Event))}, nil
}

// On registers a listener for an event name. Listeners run synchronously
// during Dispatch, in registration order, whatever element the event
// targets.
func (p *Page) On(name string, fn func(*hxcmd.Event)) {
	p.listeners[name] = append(p.listeners[name], fn)
}

// Root implements hxcmd.Host.
func (p *Page) Root() hxcmd.Elt {
	return p.Doc.Body()
}

// Find implements hxcmd.Host.
func (p *Page) Find(selector string) (hxcmd.Elt, bool) {
	n, ok := p.Doc.Find(selector)
	if !ok {
		return nil, false
	}
	return n, true
}

// ResolveSwap implements hxcmd.Host. The headless page has no swap timing,
// so the specification is the mode string itself.
func (p *Page) ResolveSwap(style string, _ hxcmd.Elt) hxcmd.SwapSpec {
	return style
}

// Swap implements hxcmd.Host.
func (p *Page) Swap(target hxcmd.Elt, content string, spec hxcmd.SwapSpec, opts hxcmd.SwapOptions) error {
	mode, _ := spec.(string)
	if err := ApplySwap(target.(*html.Node), content, mode); err != nil {
		return err
	}
	if opts.AfterSwap != nil {
		opts.AfterSwap()
	}
	if opts.AfterSettle != nil {
		opts.AfterSettle()
	}
	return nil
}

// Dispatch implements hxcmd.Host.
func (p *Page) Dispatch(_ hxcmd.Elt, evt *hxcmd.Event) {
	for _, fn := range p.listeners[evt.Name] {
		fn(evt)
	}
}

// SaveCurrent implements hxcmd.History.
func (p *Page) SaveCurrent() {
	p.History = append(p.History, HistoryOp{Op: "save"})
}

// Push implements hxcmd.History.
func (p *Page) Push(url string) {
	p.History = append(p.History, HistoryOp{Op: "push", URL: url})
}

// Replace implements hxcmd.History.
func (p *Page) Replace(url string) {
	p.History = append(p.History, HistoryOp{Op: "replace", URL: url})
}

// Assign implements hxcmd.Navigator.
func (p *Page) Assign(url string) {
	p.Redirects = append(p.Redirects, url)
}

// Reload implements hxcmd.Navigator.
func (p *Page) Reload() {
	p.Reloads++
}

// Navigate implements hxcmd.Navigator. Fetched content replaces the body's
// contents; done runs after the swap, matching the push-after-completion
// contract.
func (p *Page) Navigate(path string, _ hxcmd.Elt, opts map[string]any, done func()) {
	p.Navigations = append(p.Navigations, path)
	if p.Fetch != nil {
		if content, err := p.Fetch(path, opts); err == nil {
			_ = ApplySwap(p.Doc.Body(), content, "innerHTML")
		}
	}
	if done != nil {
		done()
	}
}
