package crcforge

import (
	"errors"
	"fmt"
)

// ErrorKind classifies search failures.
type ErrorKind int

const (
	// ErrKindInvalidArg marks a malformed search configuration.
	ErrKindInvalidArg ErrorKind = iota
	// ErrKindNotFound marks an exhausted suffix space with no match.
	ErrKindNotFound
	// ErrKindCanceled marks a search stopped by its context.
	ErrKindCanceled
	// ErrKindInternal marks a violated internal invariant.
	ErrKindInternal
)

// String returns the error kind as a string.
func (k ErrorKind) String() string {
	switch k {
	case ErrKindInvalidArg:
		return "InvalidArgument"
	case ErrKindNotFound:
		return "NotFound"
	case ErrKindCanceled:
		return "Canceled"
	case ErrKindInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is a structured error carrying the failure kind, the operation
// that hit it, and any underlying cause.
type Error struct {
	Kind    ErrorKind
	Op      string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crcforge: %s error in %s: %s (caused by: %v)",
			e.Kind, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("crcforge: %s error in %s: %s", e.Kind, e.Op, e.Message)
}

// Unwrap allows error chain inspection.
func (e *Error) Unwrap() error {
	return e.Err
}

// Common error constructors

// NewInvalidArgError creates an invalid argument error.
func NewInvalidArgError(op, message string) error {
	return &Error{
		Kind:    ErrKindInvalidArg,
		Op:      op,
		Message: message,
	}
}

// NewNotFoundError creates an exhausted-search error.
func NewNotFoundError(op, message string) error {
	return &Error{
		Kind:    ErrKindNotFound,
		Op:      op,
		Message: message,
	}
}

// NewCanceledError creates a cancellation error wrapping the context's
// error, so errors.Is still sees context.Canceled or DeadlineExceeded.
func NewCanceledError(op string, err error) error {
	return &Error{
		Kind:    ErrKindCanceled,
		Op:      op,
		Message: "search canceled",
		Err:     err,
	}
}

// NewInternalError creates an invariant violation error.
func NewInternalError(op, message string) error {
	return &Error{
		Kind:    ErrKindInternal,
		Op:      op,
		Message: message,
	}
}

// IsInvalidArg checks if an error is an invalid argument error.
func IsInvalidArg(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindInvalidArg
}

// IsNotFound checks if an error marks an exhausted suffix space.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindNotFound
}

// IsCanceled checks if an error marks a canceled search.
func IsCanceled(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == ErrKindCanceled
}
