package careers

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested slug or id is unknown to the
// careers API. Detection is by HTTP status, never by message matching.
var ErrNotFound = errors.New("job not found")

// Validation failures raised before any network call.
var (
	ErrFieldRequired  = errors.New("required field is missing")
	ErrResumeMissing  = errors.New("resume file is required")
	ErrResumeTooLarge = errors.New("resume file exceeds 10 MiB")
	ErrResumeType     = errors.New("resume must be a PDF or Word document")
)

// APIError is a non-2xx response with a structured body. Message carries
// the body's message field verbatim for display.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.Message == "" {
		return fmt.Sprintf("careers api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("careers api: %s (status %d)", e.Message, e.StatusCode)
}

// NetworkError is a transport failure with no response at all.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	return "careers api unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError names the offending form field and wraps the reason so
// callers can branch with errors.Is.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	return e.Field + ": " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
