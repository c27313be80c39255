package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequestID      = errors.New("invalid service request id")
	ErrInvalidBusinessID     = errors.New("invalid business id")
	ErrInvalidRequesterID    = errors.New("invalid requester id")
	ErrInvalidRequesterEmail = errors.New("invalid requester email")
	ErrInvalidActor          = errors.New("invalid actor")
)

// ValidationError is malformed or policy-violating input. Field names the
// offending draft field or parameter so callers can render an actionable
// message. No state change has occurred when it is returned.

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing entity by the lookup handle that was used.

type NotFoundError struct {
	Resource string
	Field    string
	Value    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found by %s: %s", e.Resource, e.Field, e.Value)
}

func newRequestNotFoundError(field, value string) *NotFoundError {
	return &NotFoundError{Resource: "service request", Field: field, Value: value}
}

// ConflictError reports a concurrent modification detected at write time.
// The caller should retry the whole read-modify-write.

type ConflictError struct {
	RequestID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("service request %s was modified concurrently; retry the update", e.RequestID)
}
