package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrItemRejected is matched by every *RejectedError.
	ErrItemRejected = errors.New("item rejected")
)

// RejectedError names the first field of a candidate that failed
// validation and a reason suitable for showing to the submitter.
type RejectedError struct {
	Field  string
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrItemRejected, e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrItemRejected) hold.
func (e *RejectedError) Unwrap() error {
	return ErrItemRejected
}

func reject(field, reason string) *RejectedError {
	return &RejectedError{Field: field, Reason: reason}
}
