package quote

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers unknown ids and unknown tokens alike.
	ErrNotFound = errors.New("quote not found")

	// ErrInvalidTransition is a precondition failure: the requested
	// lifecycle transition is not allowed from the quote's status.
	ErrInvalidTransition = errors.New("invalid quote status transition")

	// ErrStale means the quote's status advanced between read and
	// write; the caller should re-read and retry if still applicable.
	ErrStale = errors.New("quote status changed concurrently")

	// ErrAlreadyAccepted guards against signing an accepted quote.
	ErrAlreadyAccepted = errors.New("quote already accepted")

	// ErrJobExists is wrapped by job creation when the quote already
	// has its job; signing treats it as success.
	ErrJobExists = errors.New("job already exists for quote")
)

// ValidationError reports a rejected field; no state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}
