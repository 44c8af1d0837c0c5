package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed: every error that reaches the
// HTTP layer resolves to exactly one of these.
type Kind int

const (
	// KindUnprocessable is the zero value so that untyped errors fall into the
	// catch-all bucket.
	KindUnprocessable Kind = iota
	KindBadRequest
	KindNotFound
	KindInternal
)

// String returns the kind name used in logs
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BAD_REQUEST"
	case KindNotFound:
		return "NOT_FOUND"
	case KindInternal:
		return "INTERNAL"
	default:
		return "UNPROCESSABLE"
	}
}

// HTTPStatus returns the status code for the kind
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

// PublicMessage returns the fixed client-facing message for the kind
func (k Kind) PublicMessage() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "resource not found"
	case KindInternal:
		return "internal server error"
	default:
		return "unprocessable"
	}
}

// AppError is the application error type
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewBadRequest creates an error for malformed or missing input
func NewBadRequest(message string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message}
}

// NewNotFound creates an error for a referenced entity that does not exist
func NewNotFound(resource string) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource)}
}

// NewUnprocessable creates an error for an operation that could not be completed
func NewUnprocessable(message string, cause error) *AppError {
	return &AppError{Kind: KindUnprocessable, Message: message, Cause: cause}
}

// NewInternal creates an error for an internal fault
func NewInternal(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Cause: cause}
}

// GetAppError extracts an AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf returns the kind of err. Errors without a kind are unprocessable.
func KindOf(err error) Kind {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Kind
	}
	return KindUnprocessable
}

// IsBadRequest checks if an error is a bad request error
func IsBadRequest(err error) bool {
	return err != nil && KindOf(err) == KindBadRequest
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return err != nil && KindOf(err) == KindInternal
}
