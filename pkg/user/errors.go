package user

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the referenced user does not exist or is
// hidden behind a soft-delete marker.
var ErrNotFound = errors.New("user not found")

// NotFoundError carries the id that failed to resolve. It unwraps to
// ErrNotFound so callers can match with errors.Is.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string { return fmt.Sprintf("user with id %d not found", e.ID) }

func (e NotFoundError) Unwrap() error { return ErrNotFound }

// ErrValidation is a simple validation error surfaced to clients as 400.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// ErrBatchSize rejects empty or oversized bulk-create batches. Both
// the handler guard and the use case guard report this same message.
var ErrBatchSize = ErrValidation("number of users must be between 1 and 1000")
