package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of a failure.
type Code int

const (
	CodeOK Code = iota

	// Caller errors
	CodeInvalidInput
	CodeUnauthenticated
	CodeNotFoundOrNotOwned
	CodeConstraintViolation

	// Server errors
	CodeStorage
)

// String returns the code name used in logs and metric labels
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "ok"
	case CodeInvalidInput:
		return "invalid_input"
	case CodeUnauthenticated:
		return "unauthenticated"
	case CodeNotFoundOrNotOwned:
		return "not_found_or_not_owned"
	case CodeConstraintViolation:
		return "constraint_violation"
	case CodeStorage:
		return "storage_error"
	default:
		return fmt.Sprintf("code(%d)", int(c))
	}
}

// Error represents a typed failure with an optional underlying cause
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code, so
// errors.Is(err, ErrStorage) matches any storage failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrInvalidInput        = &Error{Code: CodeInvalidInput, Message: "invalid input"}
	ErrUnauthenticated     = &Error{Code: CodeUnauthenticated, Message: "unauthenticated"}
	ErrNotFoundOrNotOwned  = &Error{Code: CodeNotFoundOrNotOwned, Message: "not found"}
	ErrConstraintViolation = &Error{Code: CodeConstraintViolation, Message: "constraint violation"}
	ErrStorage             = &Error{Code: CodeStorage, Message: "storage error"}
)

// New creates an error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an error with the given code and message around cause
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// CodeOf extracts the code from err. Untyped errors are storage errors.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeStorage
}

// HTTPStatus maps err to the status code the HTTP boundary responds with
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeOK:
		return http.StatusOK
	case CodeInvalidInput:
		return http.StatusBadRequest
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeNotFoundOrNotOwned:
		return http.StatusNotFound
	case CodeConstraintViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
