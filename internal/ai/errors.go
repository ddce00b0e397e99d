package ai

import "fmt"

// ErrorType classifies AI adapter failures.
type ErrorType int

const (
	// ErrorUnavailable means no API key is configured.
	ErrorUnavailable ErrorType = iota
	// ErrorCall means the HTTP call itself failed (transport, timeout,
	// non-success status).
	ErrorCall
	// ErrorResponse means the call succeeded but the payload was unusable.
	ErrorResponse
)

// String returns the string representation of the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrorUnavailable:
		return "Unavailable"
	case ErrorCall:
		return "CallFailed"
	case ErrorResponse:
		return "BadResponse"
	default:
		return "Unknown"
	}
}

// ClientError is an AI adapter failure.
type ClientError struct {
	// Type is the failure classification.
	Type ErrorType
	// Message is the human-readable description.
	Message string
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ai client error [%s]: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("ai client error [%s]: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for error wrapping.
func (e *ClientError) Unwrap() error {
	return e.Cause
}

// NewUnavailableError creates an error for the keyless state.
func NewUnavailableError() *ClientError {
	return &ClientError{Type: ErrorUnavailable, Message: "no API key configured"}
}

// NewCallError creates an error for a failed API call.
func NewCallError(message string, cause error) *ClientError {
	return &ClientError{Type: ErrorCall, Message: message, Cause: cause}
}

// NewResponseError creates an error for an unusable API response.
func NewResponseError(message string, cause error) *ClientError {
	return &ClientError{Type: ErrorResponse, Message: message, Cause: cause}
}
