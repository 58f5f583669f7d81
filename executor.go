package hxcmd

import "go.uber.org/zap"

// Outcome classifies how a single command ended.
type Outcome int

const (
	// OutcomeDone - all requested directives ran.
	OutcomeDone Outcome = iota

	// OutcomeCanceled - a beforeServerCommand listener canceled the
	// command. Not an error.
	OutcomeCanceled

	// OutcomeInvalid - validation failed; no directive ran.
	OutcomeInvalid

	// OutcomeFailed - a directive failed after validation passed.
	OutcomeFailed

	// OutcomeNavigated - a redirect or refresh directive short-circuited
	// the command; remaining directives did not run.
	OutcomeNavigated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDone:
		return "done"
	case OutcomeCanceled:
		return "canceled"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	case OutcomeNavigated:
		return "navigated"
	default:
		return "unknown"
	}
}

// CommandResult reports the fate of one command. Err is set for
// OutcomeInvalid and OutcomeFailed.
type CommandResult struct {
	Command *Command
	Outcome Outcome
	Err     error
}

// swapJob pairs a resolved target with the content replacing it. Built only
// when the command's target attribute resolves, consumed within the same
// command.
type swapJob struct {
	target  Elt
	content string
}

// Execute runs commands strictly in order against the live document.
//
// Failures are isolated per command: an invalid or failing command is
// reported through an EventCommandError dispatch on the host root and as a
// CommandResult, and the next command still runs. The exception is real page
// navigation (redirect/refresh) - the Navigator's Assign/Reload typically
// halts the page and with it any still-queued commands, which is accepted
// behavior, not something Execute guards against.
func (e *Engine) Execute(cmds []*Command, ctxElt Elt) []CommandResult {
	results := make([]CommandResult, 0, len(cmds))
	for _, cmd := range cmds {
		res := e.runCommand(cmd, ctxElt)
		if res.Err != nil {
			e.host.Dispatch(e.host.Root(), NewEvent(EventCommandError, &ErrorDetail{
				Err:     res.Err,
				Command: cmd,
			}))
		}
		results = append(results, res)
	}
	return results
}

// runCommand drives one command through its fixed step order: before event,
// validation, swap job resolution, immediate directives, swap, after event.
// Each step may terminate the command; later commands are unaffected.
func (e *Engine) runCommand(cmd *Command, ctxElt Elt) CommandResult {
	before := NewCancelableEvent(EventBeforeCommand, &CommandDetail{Command: cmd, Context: ctxElt})
	e.host.Dispatch(ctxElt, before)
	if before.Canceled() {
		return CommandResult{Command: cmd, Outcome: OutcomeCanceled}
	}

	if err := Validate(cmd); err != nil {
		return CommandResult{Command: cmd, Outcome: OutcomeInvalid, Err: err}
	}

	var job *swapJob
	if cmd.Target.Set {
		if target, ok := e.host.Find(cmd.Target.Value); ok {
			job = &swapJob{target: target, content: cmd.Content}
		} else {
			// Non-fatal: the swap job is omitted, other directives
			// still run.
			e.log.Warn("command target not found", zap.String("selector", cmd.Target.Value))
			e.host.Dispatch(ctxElt, NewEvent(EventTargetError, &TargetErrorDetail{
				Selector: cmd.Target.Value,
				Command:  cmd,
			}))
		}
	}

	// Immediate directives. Redirect and refresh replace the page
	// outright, so they are evaluated first and short-circuit every other
	// directive of this command, the swap and the after event included.
	if cmd.Redirect.Set {
		e.nav.Assign(cmd.Redirect.Value)
		return CommandResult{Command: cmd, Outcome: OutcomeNavigated}
	}
	if cmd.Refresh.Set && cmd.Refresh.Value != "false" {
		e.nav.Reload()
		return CommandResult{Command: cmd, Outcome: OutcomeNavigated}
	}
	if cmd.Trigger.Set {
		e.dispatchTriggers(cmd.Trigger.Value)
	}
	if cmd.Location.Set {
		if err := e.navigate(cmd.Location.Value, ctxElt); err != nil {
			return CommandResult{Command: cmd, Outcome: OutcomeFailed, Err: err}
		}
	}
	if cmd.PushURL.Set {
		e.history.SaveCurrent()
		e.history.Push(cmd.PushURL.Value)
	}
	if cmd.ReplaceURL.Set {
		e.history.SaveCurrent()
		e.history.Replace(cmd.ReplaceURL.Value)
	}

	if job != nil {
		if err := e.runSwap(cmd, job, ctxElt); err != nil {
			return CommandResult{Command: cmd, Outcome: OutcomeFailed, Err: err}
		}
	}

	e.host.Dispatch(ctxElt, NewEvent(EventAfterCommand, &CommandDetail{Command: cmd}))
	return CommandResult{Command: cmd, Outcome: OutcomeDone}
}

// runSwap dispatches the cancelable beforeSwap event and, unless vetoed,
// hands the (possibly listener-mutated) job to the host swap engine.
func (e *Engine) runSwap(cmd *Command, job *swapJob, ctxElt Elt) error {
	detail := &SwapDetail{
		Context:     ctxElt,
		Target:      job.target,
		Spec:        e.host.ResolveSwap(cmd.Swap.Or(DefaultSwap), ctxElt),
		Content:     job.content,
		ShouldSwap:  true,
		FromCommand: true,
	}
	before := NewCancelableEvent(EventBeforeSwap, detail)
	e.host.Dispatch(job.target, before)
	if before.Canceled() || !detail.ShouldSwap {
		return nil
	}

	opts := SwapOptions{Select: cmd.Select.Value}
	if v := cmd.TriggerAfterSwap; v.Set {
		opts.AfterSwap = func() { e.dispatchTriggers(v.Value) }
	}
	if v := cmd.TriggerAfterSettle; v.Set {
		opts.AfterSettle = func() { e.dispatchTriggers(v.Value) }
	}
	return e.host.Swap(detail.Target, detail.Content, detail.Spec, opts)
}
