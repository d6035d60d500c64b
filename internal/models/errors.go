package models

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound    = errors.New("models: listing not found")
	ErrInvalidCategory    = errors.New("models: category must be Have or Need")
	ErrMissingContact     = errors.New("models: at least one contact channel is required")
	ErrInvalidEmail       = errors.New("models: contact email is not a valid address")
	ErrInvalidDeleteToken = errors.New("models: invalid delete code")
)

// RestrictedContentError reports the first banned term found in a
// submitted field. Moderation rejection is a soft gate, not a failure:
// the caller blocks the submission and surfaces field and term.
type RestrictedContentError struct {
	Field string
	Term  string
}

func (e *RestrictedContentError) Error() string {
	return fmt.Sprintf("restricted content in %s: %q", e.Field, e.Term)
}
