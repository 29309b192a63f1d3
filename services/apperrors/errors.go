// Package apperrors defines the error taxonomy shared by the service layer.
// Handlers map these to HTTP statuses with errors.As.
package apperrors

import "fmt"

// ValidationError reports a missing or malformed field, or an inconsistent
// billing pair.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an absent patient, device or rent session.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// NewNotFound builds a NotFoundError from a format string.
func NewNotFound(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports an overlapping booking or a uniqueness violation
// surfaced by the store.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// NewConflict builds a ConflictError from a format string.
func NewConflict(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// StateError reports an invalid lifecycle transition, such as mutating a
// soft-deleted record.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

// NewState builds a StateError from a format string.
func NewState(format string, args ...interface{}) error {
	return &StateError{Message: fmt.Sprintf(format, args...)}
}

// StorageError reports a transient store failure. Safe to retry.
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorage wraps a store failure.
func NewStorage(message string, err error) error {
	return &StorageError{Message: message, Err: err}
}
