package services

import (
	"errors"
	"fmt"
)

var (
	ErrWelcomeEmail = errors.New("failed to send welcome email")
	// ErrMissingFields is returned when a welcome email lacks an address or name.
	ErrMissingFields = errors.New("missing required fields")
)

// ValidationError wraps the validator's field errors.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid form data: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
