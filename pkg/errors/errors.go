package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingConfig    = errors.New("required configuration is missing")
	ErrNotConfigured    = errors.New("tenant is not configured")
	ErrUpstreamQuery    = errors.New("upstream query failed")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Error represents a custom error type
type Error struct {
	Code    string
	Message string
	Detail  string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new error with a message
func New(message string) error {
	return &Error{
		Message: message,
	}
}

// Wrap wraps an error with additional message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Err:     err,
	}
}

// WrapWithDetail wraps an error with a message and a diagnostic detail string
// that is safe to surface to the caller (e.g. the raw upstream error body).
func WrapWithDetail(err error, message, detail string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Message: message,
		Detail:  detail,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// GetMessage returns the error message
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// GetDetail returns the diagnostic detail attached to err, if any.
func GetDetail(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Detail != "" {
		return e.Detail
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// IsNotConfigured returns true if the error is a tenant-not-configured error
func IsNotConfigured(err error) bool {
	return errors.Is(err, ErrNotConfigured)
}

// IsMissingConfig returns true if the error is a missing configuration error
func IsMissingConfig(err error) bool {
	return errors.Is(err, ErrMissingConfig)
}

// IsUpstreamQuery returns true if the error comes from the upstream query
func IsUpstreamQuery(err error) bool {
	return errors.Is(err, ErrUpstreamQuery)
}
