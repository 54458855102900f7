package record

import "errors"

// Error taxonomy for record operations. The API layer maps these onto HTTP
// statuses: validation and conflict errors surface as 400 (the client-facing
// contract reports duplicates as bad requests), lookups as 404, and anything
// else as 500 with the underlying message passed through.

// ValidationError indicates missing or malformed input. It is raised before
// any store access and never leaves side effects behind.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string { return e.msg }

// NotFoundError indicates a record or id that does not exist in the store.
type NotFoundError struct {
	msg string
}

func NewNotFoundError(msg string) *NotFoundError {
	return &NotFoundError{msg: msg}
}

func (e *NotFoundError) Error() string { return e.msg }

// ConflictError indicates a duplicate unique field (roll or registration
// number) or a duplicate named sub-entry (billing by bill name).
type ConflictError struct {
	msg string
}

func NewConflictError(msg string) *ConflictError {
	return &ConflictError{msg: msg}
}

func (e *ConflictError) Error() string { return e.msg }

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var conflict *ConflictError
	return errors.As(err, &conflict)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}
