package hxcmd

import "errors"

// Sentinel errors for command validation and execution.
//
// Validation violations wrap one of the Err* sentinels, so callers can use
// errors.Is on the aggregate error returned by Validate even when several
// violations were combined.
var (
	// ErrNoCommandAttribute marks a command tag carrying no recognized
	// attribute at all.
	ErrNoCommandAttribute = errors.New("hxcmd: no command attribute")

	// ErrUnknownAttribute marks an attribute name outside the recognized
	// vocabulary. One violation is recorded per unknown name.
	ErrUnknownAttribute = errors.New("hxcmd: unknown attribute")

	// ErrSwapWithoutTarget marks a swap or select attribute without an
	// accompanying target.
	ErrSwapWithoutTarget = errors.New("hxcmd: swap/select without target")

	// ErrTargetUnresolved marks a target selector that matched nothing in
	// the live document. Non-fatal: the command's swap job is omitted.
	ErrTargetUnresolved = errors.New("hxcmd: target selector unresolved")

	// ErrBadLocation marks a location attribute whose value starts with "{"
	// but is not valid JSON.
	ErrBadLocation = errors.New("hxcmd: malformed location value")
)

// IsValidationError checks if err stems from command validation.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNoCommandAttribute) ||
		errors.Is(err, ErrUnknownAttribute) ||
		errors.Is(err, ErrSwapWithoutTarget)
}
