package github

import "fmt"

// APIErrorType classifies GitHub API failures.
type APIErrorType int

const (
	// APIRequestFailed is a transport-level or encoding failure.
	APIRequestFailed APIErrorType = iota
	// APINotFound is a 404 response.
	APINotFound
	// APIAuthFailed is a 401/403 response.
	APIAuthFailed
	// APIBadStatus is any other non-success status.
	APIBadStatus
	// APIPushAborted is a push sequence failure; the step that failed is
	// recorded and nothing after it was attempted.
	APIPushAborted
)

// String returns the string representation of the error type.
func (t APIErrorType) String() string {
	switch t {
	case APIRequestFailed:
		return "RequestFailed"
	case APINotFound:
		return "NotFound"
	case APIAuthFailed:
		return "AuthFailed"
	case APIBadStatus:
		return "BadStatus"
	case APIPushAborted:
		return "PushAborted"
	default:
		return "Unknown"
	}
}

// APIError is a GitHub adapter failure.
type APIError struct {
	// Type is the failure classification.
	Type APIErrorType
	// Path is the API path of the failing request, or the push step name
	// for APIPushAborted.
	Path string
	// Status is the HTTP status for APIBadStatus.
	Status int
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	switch e.Type {
	case APIBadStatus:
		return fmt.Sprintf("github api error [%s] %s: unexpected status %d", e.Type, e.Path, e.Status)
	case APIPushAborted:
		return fmt.Sprintf("github push aborted at step %q: %v", e.Path, e.Cause)
	default:
		if e.Cause != nil {
			return fmt.Sprintf("github api error [%s] %s: %v", e.Type, e.Path, e.Cause)
		}
		return fmt.Sprintf("github api error [%s] %s", e.Type, e.Path)
	}
}

// Unwrap returns the underlying cause for error wrapping.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewRequestError creates a transport/encoding failure error.
func NewRequestError(path string, cause error) *APIError {
	return &APIError{Type: APIRequestFailed, Path: path, Cause: cause}
}

// NewNotFoundError creates a 404 error.
func NewNotFoundError(path string) *APIError {
	return &APIError{Type: APINotFound, Path: path}
}

// NewAuthError creates a 401/403 error.
func NewAuthError(path string) *APIError {
	return &APIError{Type: APIAuthFailed, Path: path}
}

// NewStatusError creates an unexpected-status error.
func NewStatusError(path string, status int) *APIError {
	return &APIError{Type: APIBadStatus, Path: path, Status: status}
}

// NewPushStepError wraps a failure of one push step, aborting the sequence.
func NewPushStepError(step string, cause error) *APIError {
	return &APIError{Type: APIPushAborted, Path: step, Cause: cause}
}
