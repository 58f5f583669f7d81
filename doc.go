// Package hxcmd implements server commands for HTMX-style pages: small
// declarative <htmx ...>...</htmx> fragments a server pushes into an already
// rendered page, each describing one UI side effect - swap content into a
// target, fire a client event, or navigate.
//
// One streamed message can carry several commands, so a single push updates
// several unrelated page regions in order - something a single swap-target
// response cannot do:
//
//	<htmx target="#frames" swap="textContent">current-frame-text</htmx>
//	<htmx target="#progress" swap="textContent">42.5%</htmx>
//
// # Processing Model
//
// The Engine is the receiving side. Transform is the per-message entry
// point: it strips every command tag from the fragment, returns the
// sanitized markup synchronously for immediate display, and schedules the
// top-level commands for execution:
//
//	engine := hxcmd.New(host, history, nav)
//	sanitized, task := engine.Transform(message, ctxElt)
//	// display sanitized, then optionally await task
//
// Only commands that are direct children of the fragment root execute;
// nested command tags are inert and dropped with a warning. Commands run
// strictly in document order, each through a fixed sequence: a cancelable
// beforeServerCommand event, validation, swap-target resolution, immediate
// directives (trigger, location, redirect, refresh, push-url, replace-url),
// the swap itself behind a cancelable beforeSwap event, and a closing
// afterServerCommand event. Redirect and refresh short-circuit the rest of
// their command.
//
// Failures are isolated per command: validation rejects a malformed tag
// before any of its side effects, the error surfaces as a serverCommandError
// event and a CommandResult, and sibling commands in the batch still run.
//
// # Collaborators
//
// The engine mutates nothing itself. Document lookup, swapping, event
// delivery, history and navigation are behind the Host, History and
// Navigator interfaces, injected at construction. lib/dom provides a
// headless implementation over a parsed HTML tree; TestHost in this package
// is a recording double for tests.
//
// # Emitting Commands
//
// The Cmd builder produces wire-format command tags on the server side:
//
//	hxcmd.Update("#frames", hxcmd.SwapText, frame).String()
//
// Batches group commands for a single message. Builders render as strings
// for transports like SSE, or as templ components for embedding in
// templates.
package hxcmd
