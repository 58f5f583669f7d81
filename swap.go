package hxcmd

// SwapMode defines HTMX swap strategies for how command content replaces the
// target element.
//
// Each mode corresponds to an hx-swap value. Commands default to SwapOuter
// when the swap attribute is absent.
//
// See https://htmx.org/attributes/hx-swap/ for visual examples.
type SwapMode string

const (
	// SwapOuter replaces the entire element including its tag (outerHTML).
	// This is the default swap mode.
	SwapOuter SwapMode = "outerHTML"

	// SwapInner replaces only the element's contents, preserving the outer tag (innerHTML).
	SwapInner SwapMode = "innerHTML"

	// SwapText replaces the element's contents with the command payload as
	// plain text (textContent). No HTML parsing occurs, which makes it the
	// mode of choice for high-frequency streams of preformatted text.
	SwapText SwapMode = "textContent"

	// SwapBeforeEnd appends the content to the end of the target's contents (before closing tag).
	// Useful for adding items to lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapAfterEnd inserts the content after the target element (as next sibling).
	SwapAfterEnd SwapMode = "afterend"

	// SwapBeforeBegin inserts the content before the target element (as previous sibling).
	SwapBeforeBegin SwapMode = "beforebegin"

	// SwapAfterBegin prepends the content to the start of the target's contents (after opening tag).
	// Useful for prepending items to lists.
	SwapAfterBegin SwapMode = "afterbegin"

	// SwapDelete removes the target element entirely.
	// Command content is ignored.
	SwapDelete SwapMode = "delete"

	// SwapNone performs no swap - content is discarded.
	// Useful for commands carrying only triggers or navigation.
	SwapNone SwapMode = "none"
)

// DefaultSwap is the swap style applied when a command carries a target but
// no swap attribute.
const DefaultSwap = string(SwapOuter)
