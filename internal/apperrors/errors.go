// Package apperrors defines the categories of failure the console reacts to.
//
// Repositories and services return *AppError values (possibly wrapped). The
// console inspects the category to decide whether to re-prompt, abandon the
// current operation, or restart a multi-step flow.
package apperrors

import (
	"errors"
	"fmt"
)

// ErrorType represents the category of an error.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeStore        ErrorType = "store_error"
)

// AppError is an application error with a user-facing message.
type AppError struct {
	Type    ErrorType
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(t ErrorType, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Details: detail}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	return newError(ErrorTypeValidation, message, details)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, details ...string) *AppError {
	return newError(ErrorTypeNotFound, message, details)
}

// NewConflictError creates a new conflict error
func NewConflictError(message string, details ...string) *AppError {
	return newError(ErrorTypeConflict, message, details)
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newError(ErrorTypeUnauthorized, message, details)
}

// NewStoreError wraps a database failure that is not one of the more specific categories.
func NewStoreError(message string, cause error) *AppError {
	e := &AppError{Type: ErrorTypeStore, Message: message, Err: cause}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// WithCause attaches the underlying error so errors.Is/As can reach it.
func (e *AppError) WithCause(cause error) *AppError {
	e.Err = cause
	return e
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func IsAppError(err error) bool {
	return GetAppError(err) != nil
}

func is(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsValidationError(err error) bool { return is(err, ErrorTypeValidation) }

func IsNotFoundError(err error) bool { return is(err, ErrorTypeNotFound) }

func IsConflictError(err error) bool { return is(err, ErrorTypeConflict) }

func IsUnauthorizedError(err error) bool { return is(err, ErrorTypeUnauthorized) }

// IsStoreError reports whether err came from the database. Conflicts count
// as store errors since they are constraint violations.
func IsStoreError(err error) bool {
	return is(err, ErrorTypeStore) || is(err, ErrorTypeConflict)
}

// Message returns the text to show a user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}
