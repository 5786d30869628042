package adaptation

import (
	"errors"
	"fmt"
)

// Sentinel errors crossing the service boundary. Callers should use
// errors.Is; only these two kinds are ever surfaced.
var (
	// ErrValidation marks malformed or out-of-range caller input. Never
	// retried and never reaches the network.
	ErrValidation = errors.New("adaptation: invalid input")

	// ErrUpstreamExhausted marks that every credential failed across all
	// retry rounds. Safe for the caller to retry later.
	ErrUpstreamExhausted = errors.New("adaptation: all upstream credentials failed")
)

// ValidationError wraps ErrValidation with the offending field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("adaptation: invalid %q: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// UpstreamError wraps ErrUpstreamExhausted with the last underlying
// failure. The cause is logged upstream; it is carried here only for
// summary messages, never exposed structurally to API callers.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return ErrUpstreamExhausted.Error()
	}
	return fmt.Sprintf("%v: %v", ErrUpstreamExhausted, e.Err)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstreamExhausted }
