package errors

import (
	"errors"
	"fmt"
)

// Error represents a structured error with code, kind, message, and metadata.
//
// Message is the short headline shown to a user; Description is the longer
// human-readable explanation rendered from the failing context.
type Error struct {
	Code        Code                   `json:"code"`
	Kind        Kind                   `json:"kind,omitempty"`
	Message     string                 `json:"message"`
	Description string                 `json:"description,omitempty"`
	Cause       error                  `json:"-"`
	Meta        map[string]interface{} `json:"meta,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Message
	if e.Description != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Description)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target has the same code and, when target carries a
// kind, whether this error's kind descends from it.
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if !errors.As(target, &targetErr) {
		return false
	}
	if e.Code != targetErr.Code {
		return false
	}
	if targetErr.Kind != "" {
		return e.Kind.IsA(targetErr.Kind)
	}
	return true
}

// WithMeta adds metadata to the error
func (e *Error) WithMeta(key string, value interface{}) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]interface{})
	}
	e.Meta[key] = value
	return e
}

// WithCause attaches the underlying error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with a formatted message
func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap adds message in front of err. An *Error keeps its code, kind,
// description and metadata; anything else becomes CodeInternal.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	existing, ok := find(err)
	if !ok {
		return &Error{Code: CodeInternal, Message: message, Cause: err}
	}
	return &Error{
		Code:        existing.Code,
		Kind:        existing.Kind,
		Message:     message,
		Description: existing.Description,
		Cause:       err,
		Meta:        existing.Meta,
	}
}

// Wrapf wraps an error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err under a new code. Metadata is copied so the
// wrapper can be annotated without touching err.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}
	out := &Error{Code: code, Message: message, Cause: err}
	if existing, ok := find(err); ok {
		for k, v := range existing.Meta {
			out.WithMeta(k, v)
		}
	}
	return out
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a not found error with formatted message
func NotFoundf(format string, args ...interface{}) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates an invalid argument error with formatted message
func InvalidArgumentf(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates an already exists error with formatted message
func AlreadyExistsf(format string, args ...interface{}) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internal creates an internal error
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// FailedPreconditionf creates a failed precondition error with formatted message
func FailedPreconditionf(format string, args ...interface{}) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}
