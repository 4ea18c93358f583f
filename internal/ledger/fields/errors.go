package fields

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is
var (
	ErrMissingField   = errors.New("missing required field")
	ErrMalformedField = errors.New("malformed field")
)

// MissingFieldError reports a required field absent from the raw payload.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// MalformedFieldError reports a field present but of unexpected shape or type.
type MalformedFieldError struct {
	Field  string
	Reason string
}

func (e *MalformedFieldError) Error() string {
	return fmt.Sprintf("malformed field %s: %s", e.Field, e.Reason)
}

func (e *MalformedFieldError) Unwrap() error {
	return ErrMalformedField
}
