package hxcmd

// Elt is an opaque handle to a live document element. The engine never
// inspects handles; it only passes them between the host's own operations
// and carries them in event payloads.
type Elt = any

// SwapSpec is the host's resolved swap mode/timing. Opaque to the engine:
// produced by Host.ResolveSwap and consumed by Host.Swap, with listeners on
// EventBeforeSwap allowed to replace it in between.
type SwapSpec = any

// SwapOptions carries the optional parts of a swap invocation.
//
// AfterSwap and AfterSettle are driven by the host's own swap timing - the
// engine does not wait for them before moving to the next command.
type SwapOptions struct {
	// Select is a sub-selector applied to the swapped content, from the
	// command's select attribute.
	Select string

	// AfterSwap runs once the content has been swapped in.
	AfterSwap func()

	// AfterSettle runs once the swapped content has settled.
	AfterSettle func()
}

// Host is the document-side collaborator: element lookup, swap execution and
// event delivery. The engine sequences calls into it but performs no DOM
// mutation itself.
//
// Implementations must deliver Dispatch synchronously - the engine reads
// mutable event details back as soon as Dispatch returns.
type Host interface {
	// Root returns the page root, the default dispatch target for trigger
	// directives and command errors.
	Root() Elt

	// Find resolves a selector against the live document.
	Find(selector string) (Elt, bool)

	// ResolveSwap resolves a swap style string against a context element's
	// defaults into the host's swap specification.
	ResolveSwap(style string, context Elt) SwapSpec

	// Swap replaces target content according to spec. Completion callbacks
	// in opts follow the host's own swap/settle timing.
	Swap(target Elt, content string, spec SwapSpec, opts SwapOptions) error

	// Dispatch delivers an event to listeners on target.
	Dispatch(target Elt, evt *Event)
}

// History is the browser-history collaborator. The engine imposes one
// ordering rule on it: SaveCurrent is always called immediately before any
// Push or Replace, so back-navigation can restore pre-command state.
type History interface {
	SaveCurrent()
	Push(url string)
	Replace(url string)
}

// Navigator is the page-navigation collaborator.
type Navigator interface {
	// Assign navigates the page to url, as a redirect directive requests.
	Assign(url string)

	// Reload reloads the current page, as a refresh directive requests.
	Reload()

	// Navigate issues an asynchronous fetch-and-swap against path with
	// source as the content source. Implementations call done (if non-nil)
	// when the navigation completes; the engine uses it to push history.
	Navigate(path string, source Elt, opts map[string]any, done func())
}
