package errs

import (
	"errors"
	"fmt"
)

// Error categories shared by the usecase and handler layers.
var (
	ErrValidation              = errors.New("validation failed")
	ErrNotFound                = errors.New("not found")
	ErrConflict                = errors.New("conflict")
	ErrForbidden               = errors.New("forbidden")
	ErrInsufficientStock       = errors.New("insufficient stock")
	ErrCollaborator            = errors.New("collaborator failure")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// ValidationError names the first offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CollaboratorError wraps a failure of an external system (carrier, mailer, broker).
type CollaboratorError struct {
	Collaborator string
	Op           string
	StatusCode   int
	Retryable    bool
	Err          error
}

func (e *CollaboratorError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Collaborator, e.Op)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

func (e *CollaboratorError) Is(target error) bool {
	return target == ErrCollaborator
}

func IsRetryable(err error) bool {
	var ce *CollaboratorError
	if errors.As(err, &ce) {
		return ce.Retryable
	}
	return false
}
