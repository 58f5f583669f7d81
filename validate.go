package hxcmd

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate checks a command against the attribute model.
//
// Three rules apply:
//  1. At least one recognized attribute must be present
//     (ErrNoCommandAttribute, carrying the tag outline).
//  2. Every attribute name must be recognized (one ErrUnknownAttribute
//     violation per offending name).
//  3. swap or select require target (ErrSwapWithoutTarget).
//
// All violations are collected and combined into one aggregate error, so a
// broken tag is reported completely in a single pass. Validation runs before
// any directive executes: an invalid command produces no side effects at all.
func Validate(cmd *Command) error {
	var err error

	if !cmd.Recognized() {
		err = multierr.Append(err, fmt.Errorf("%w: %s (expected one of %v)",
			ErrNoCommandAttribute, cmd.Outline(), attrNames))
	}
	for _, name := range cmd.Unknown {
		err = multierr.Append(err, fmt.Errorf("%w: %q (expected one of %v)",
			ErrUnknownAttribute, name, attrNames))
	}
	if (cmd.Swap.Set || cmd.Select.Set) && !cmd.Target.Set {
		err = multierr.Append(err, fmt.Errorf("%w: %s",
			ErrSwapWithoutTarget, cmd.Outline()))
	}

	return err
}
