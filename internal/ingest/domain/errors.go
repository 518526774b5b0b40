package domain

import "errors"

var (
	// ErrInvalidPayload is returned when a batch message cannot be parsed
	// or names no source.
	ErrInvalidPayload = errors.New("invalid batch payload")

	// ErrEmptyBatch is returned when a batch message carries no postings.
	ErrEmptyBatch = errors.New("batch contains no postings")
)

// RetryableError wraps transient errors that should trigger a requeue.
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error.
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
