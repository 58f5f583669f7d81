package hxcmd

// Event names emitted by the engine.
//
// The command lifecycle events are defined by this package; beforeSwap and
// targetError belong to the host swap engine's own vocabulary - the engine
// fires them but hosts define what listening means.
const (
	// EventBeforeCommand is dispatched on the context element before a
	// command runs. Cancelable; canceling skips the command entirely,
	// without an error.
	EventBeforeCommand = "beforeServerCommand"

	// EventAfterCommand is dispatched after a command's synchronous steps
	// complete. Not cancelable.
	EventAfterCommand = "afterServerCommand"

	// EventCommandError is dispatched on the host root when a command
	// fails, carrying the error and the offending command. Not cancelable.
	EventCommandError = "serverCommandError"

	// EventBeforeSwap is dispatched on the swap target before content is
	// swapped. Cancelable; listeners may also mutate the SwapDetail.
	EventBeforeSwap = "beforeSwap"

	// EventTargetError is dispatched on the context element when a target
	// selector resolves to nothing. Not cancelable.
	EventTargetError = "targetError"
)

// Event is a client event dispatched through the host.
//
// Detail is mutable by listeners when it is a pointer type - the engine
// re-reads SwapDetail after dispatching EventBeforeSwap, so listeners can
// retarget a swap or veto it by flipping ShouldSwap.
type Event struct {
	Name       string
	Cancelable bool
	Detail     any

	canceled bool
}

// NewEvent creates a non-cancelable event.
func NewEvent(name string, detail any) *Event {
	return &Event{Name: name, Detail: detail}
}

// NewCancelableEvent creates an event listeners may cancel.
func NewCancelableEvent(name string, detail any) *Event {
	return &Event{Name: name, Cancelable: true, Detail: detail}
}

// Cancel marks the event as canceled. It has no effect on events that are
// not cancelable.
func (e *Event) Cancel() {
	if e.Cancelable {
		e.canceled = true
	}
}

// Canceled reports whether a listener canceled the event.
func (e *Event) Canceled() bool {
	return e.canceled
}

// CommandDetail is the payload of EventBeforeCommand and EventAfterCommand.
// Context is nil on the after event.
type CommandDetail struct {
	Command *Command
	Context Elt
}

// ErrorDetail is the payload of EventCommandError.
type ErrorDetail struct {
	Err     error
	Command *Command
}

// SwapDetail is the payload of EventBeforeSwap. Listeners may mutate Target,
// Spec and Content before the swap executes, or set ShouldSwap to false to
// skip it.
type SwapDetail struct {
	Context     Elt
	Target      Elt
	Spec        SwapSpec
	Content     string
	ShouldSwap  bool
	FromCommand bool
}

// TargetErrorDetail is the payload of EventTargetError.
type TargetErrorDetail struct {
	Selector string
	Command  *Command
}
