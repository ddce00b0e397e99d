package app

import "fmt"

// InputError is a validation failure of user-supplied input. It is shown
// inline and the operation does not proceed; nothing about it is fatal.
type InputError struct {
	// Field names the offending input ("raw input", "repo url", ...).
	Field string
	// Message describes the problem in user-facing terms.
	Message string
}

// Error implements the error interface.
func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewInputError creates a new InputError.
func NewInputError(field, message string) *InputError {
	return &InputError{Field: field, Message: message}
}
