package model

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrSuperseded = errors.New("fetch cycle superseded by a newer request")
)

// DefaultUpstreamMessage is used when the catalog service fails without a message.
const DefaultUpstreamMessage = "Failed to fetch trending videos"

// ValidationError reports a missing or invalid request field.
type ValidationError struct {
	Message string
}

func NewValidationError(msg string) *ValidationError { return &ValidationError{Message: msg} }

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError reports a non-success response or transport failure from the catalog service.
type UpstreamError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *UpstreamError) Error() string { return e.Message }

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnexpectedError wraps anything that is neither a validation nor an upstream failure.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return "An error occurred"
	}
	return e.Err.Error()
}

func (e *UnexpectedError) Unwrap() error { return e.Err }
