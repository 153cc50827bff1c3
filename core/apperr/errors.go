package apperr

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeConfiguration  Code = "CONFIGURATION"
	CodeNotFound       Code = "NOT_FOUND"
	CodeCreationFailed Code = "CREATION_FAILED"
	CodeRemoteAPI      Code = "REMOTE_API"
)

// Error is a coded application error.
type Error struct {
	code    Code
	message string
	cause   error

	// Backend and FaultCode are set for REMOTE_API errors.
	Backend   string
	FaultCode string
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

func Wrap(code Code, cause error, message string) *Error {
	return &Error{code: code, message: message, cause: cause}
}

// NotFound reports a missing remote entity, e.g. NotFound("placement", "name", "Top").
func NotFound(kind, field, value string) *Error {
	return Newf(CodeNotFound, "%s with %s %q not found", kind, field, value)
}

// CreationFailed reports a create call that returned no matching entity.
func CreationFailed(kind, name string) *Error {
	return Newf(CodeCreationFailed, "can't create %s with name %q", kind, name)
}

// Remote reports a fault raised by a remote API.
func Remote(backend, faultCode, message string) *Error {
	e := Newf(CodeRemoteAPI, "%s fault %s: %s", backend, faultCode, message)
	e.Backend = backend
	e.FaultCode = faultCode
	return e
}

func (e *Error) Code() Code {
	if e == nil {
		return ""
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	e := As(err)
	return e != nil && e.code == code
}
