package rest

import (
	"errors"
	"net/http"
)

var (
	ErrBadAny         = errors.New("bad value for any")
	ErrBadConfig      = errors.New("bad config")
	ErrBadFormat      = errors.New("bad format")
	ErrMissingData    = errors.New("missing data")
	ErrNotAcceptable  = errors.New("not acceptable")
	ErrNotExist       = errors.New("not exist")
	ErrNotImplemented = errors.New("not implemented")
	ErrNotValid       = errors.New("invalid")
	ErrUnexpected     = errors.New("unexpected")
)

// A Kind names the category of an [*Error].
type Kind string

const (
	KindNotAcceptable Kind = "NotAcceptable"
	KindNotFound      Kind = "NotFound"
	KindValidation    Kind = "ValidationError"
)

// An Error is a structured error an HTTP handler forwards to the central error handler.
//
// Only an Error marked Public has its Message and Details shown to clients.
type Error struct {
	Message        string
	Kind           Kind
	Public         bool
	HTTPStatusCode int
	Details        map[string]any

	// Err is the underlying cause, exposed through Unwrap.
	Err error
}

// Error returns the message, falling back to the cause when no message is set.
func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.Err != nil {
		return e.Err.Error()
	}

	return string(e.Kind)
}

// StatusCode returns the HTTP status code the Error maps to.
// An Error without one maps to http.StatusInternalServerError.
func (e *Error) StatusCode() int {
	if e.HTTPStatusCode == 0 {
		return http.StatusInternalServerError
	}

	return e.HTTPStatusCode
}

func (e *Error) Unwrap() error { return e.Err }

// NewNotAcceptableError constructs the public, 406 error reported when
// none of the acceptable media types satisfy a request's "Accept" header.
func NewNotAcceptableError(acceptable []string) *Error {
	types := make([]string, len(acceptable))
	copy(types, acceptable)

	return &Error{
		Message:        "Requested content types not acceptable.",
		Kind:           KindNotAcceptable,
		Public:         true,
		HTTPStatusCode: http.StatusNotAcceptable,
		Details:        map[string]any{"acceptable": types},
		Err:            ErrNotAcceptable,
	}
}

// ErrorStatus finds the HTTP status code carried by err.
// When err carries none, http.StatusInternalServerError returns.
func ErrorStatus(err error) int {
	var sc interface{ StatusCode() int }
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}

	return http.StatusInternalServerError
}
