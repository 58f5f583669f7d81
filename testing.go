package hxcmd

// Test doubles for the engine's collaborators.
//
// TestHost records every host interaction instead of touching a document,
// which keeps engine unit tests about sequencing and isolation rather than
// DOM mechanics. For tests that want a real tree, lib/dom.Page implements
// the same interfaces over an actual parsed document.

// TestElt is the element handle used by TestHost: just the selector that
// resolved to it. The root handle has selector "(root)".
type TestElt struct {
	Selector string
}

// TestRootSelector identifies the TestHost root handle.
const TestRootSelector = "(root)"

// SwapRecord is one recorded Host.Swap invocation.
type SwapRecord struct {
	Target  TestElt
	Content string
	Spec    string
	Select  string
}

// EventRecord is one recorded Host.Dispatch invocation.
type EventRecord struct {
	Target Elt
	Event  *Event
}

// TestHost implements Host, History and Navigator, recording everything.
//
// Selectors listed in Known resolve; everything else fails lookup. Swap
// completion callbacks fire synchronously unless HoldCallbacks is set, in
// which case tests release them via FlushCallbacks. Navigation calls done
// immediately unless OnNavigate overrides the behavior.
type TestHost struct {
	// Known lists the selectors Find resolves.
	Known []string

	// HoldCallbacks defers after-swap/after-settle callbacks until
	// FlushCallbacks, for tests asserting on their relative timing.
	HoldCallbacks bool

	// OnNavigate, when set, replaces the default Navigate behavior
	// (record and complete immediately).
	OnNavigate func(path string, source Elt, opts map[string]any, done func())

	Swaps       []SwapRecord
	Events      []EventRecord
	HistoryOps  []string // "save", "push:<url>", "replace:<url>"
	Assigns     []string
	Reloads     int
	Navigations []string

	listeners map[string][]func(*Event)
	held      []func()
}

// NewTestHost creates a TestHost that resolves the given selectors.
func NewTestHost(known ...string) *TestHost {
	return &TestHost{Known: known, listeners: make(map[string][]func(*Event))}
}

// On registers a listener invoked synchronously for events with the given
// name, regardless of target.
func (h *TestHost) On(name string, fn func(*Event)) {
	if h.listeners == nil {
		h.listeners = make(map[string][]func(*Event))
	}
	h.listeners[name] = append(h.listeners[name], fn)
}

// EventNames returns the names of all dispatched events, in order.
func (h *TestHost) EventNames() []string {
	names := make([]string, len(h.Events))
	for i, rec := range h.Events {
		names[i] = rec.Event.Name
	}
	return names
}

// FlushCallbacks runs callbacks held back by HoldCallbacks.
func (h *TestHost) FlushCallbacks() {
	held := h.held
	h.held = nil
	for _, fn := range held {
		fn()
	}
}

// Root implements Host.
func (h *TestHost) Root() Elt {
	return TestElt{Selector: TestRootSelector}
}

// Find implements Host.
func (h *TestHost) Find(selector string) (Elt, bool) {
	for _, known := range h.Known {
		if known == selector {
			return TestElt{Selector: selector}, true
		}
	}
	return nil, false
}

// ResolveSwap implements Host. The recorded specification is the style
// string itself.
func (h *TestHost) ResolveSwap(style string, _ Elt) SwapSpec {
	return style
}

// Swap implements Host.
func (h *TestHost) Swap(target Elt, content string, spec SwapSpec, opts SwapOptions) error {
	mode, _ := spec.(string)
	h.Swaps = append(h.Swaps, SwapRecord{
		Target:  target.(TestElt),
		Content: content,
		Spec:    mode,
		Select:  opts.Select,
	})
	for _, fn := range []func(){opts.AfterSwap, opts.AfterSettle} {
		if fn == nil {
			continue
		}
		if h.HoldCallbacks {
			h.held = append(h.held, fn)
		} else {
			fn()
		}
	}
	return nil
}

// Dispatch implements Host.
func (h *TestHost) Dispatch(target Elt, evt *Event) {
	h.Events = append(h.Events, EventRecord{Target: target, Event: evt})
	for _, fn := range h.listeners[evt.Name] {
		fn(evt)
	}
}

// SaveCurrent implements History.
func (h *TestHost) SaveCurrent() {
	h.HistoryOps = append(h.HistoryOps, "save")
}

// Push implements History.
func (h *TestHost) Push(url string) {
	h.HistoryOps = append(h.HistoryOps, "push:"+url)
}

// Replace implements History.
func (h *TestHost) Replace(url string) {
	h.HistoryOps = append(h.HistoryOps, "replace:"+url)
}

// Assign implements Navigator.
func (h *TestHost) Assign(url string) {
	h.Assigns = append(h.Assigns, url)
}

// Reload implements Navigator.
func (h *TestHost) Reload() {
	h.Reloads++
}

// Navigate implements Navigator.
func (h *TestHost) Navigate(path string, source Elt, opts map[string]any, done func()) {
	if h.OnNavigate != nil {
		h.OnNavigate(path, source, opts, done)
		return
	}
	h.Navigations = append(h.Navigations, path)
	if done != nil {
		done()
	}
}
