package trivia

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the engine. The HTTP layer maps each one to a stable status.
var (
	ErrBadRequest    = errors.New("bad request")
	ErrNotFound      = errors.New("resource not found")
	ErrUnprocessable = errors.New("unprocessable request")
	// ErrExhausted is the normal end of a quiz session, not a client error.
	ErrExhausted = errors.New("no questions remaining")
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func missingField(field string) error {
	return &ValidationError{Field: field, Message: "is required", Kind: ErrBadRequest}
}

func invalidField(field, message string) error {
	return &ValidationError{Field: field, Message: message, Kind: ErrUnprocessable}
}
