package automaton

import "errors"

// Sentinel errors for the automaton package. Call sites wrap these with
// fmt.Errorf("...: %w", ErrX) so errors.Is keeps working through the wrap.
var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateID        = errors.New("duplicate id")
	ErrInvalidID          = errors.New("invalid id")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrUnsupported        = errors.New("unsupported")
)
