package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by the record client.
var (
	// ErrNotFound indicates a lookup returned zero records.
	// It is a valid empty result, not a transport failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrMissingConfig indicates the base identifier or API key is not configured.
	// It is raised lazily on the first request, never at startup.
	ErrMissingConfig = errors.New("record service configuration missing")
)

// ValidationError lists the fields that failed validation on a lead form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid input: required fields missing"
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
