package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// find returns the outermost *Error in err's chain.
func find(err error) (*Error, bool) {
	var e *Error
	if err == nil || !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of err. Foreign errors are CodeInternal.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	return CodeInternal
}

// GetKind returns the failure kind of err. Errors without one report
// KindGeneric.
func GetKind(err error) Kind {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok && e.Kind != "" {
		return e.Kind
	}
	return KindGeneric
}

// IsKind reports whether err is of kind or of any descendant of kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return GetKind(err).IsA(kind)
}

// GetMeta returns the metadata of err, if any.
func GetMeta(err error) map[string]interface{} {
	if e, ok := find(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the headline of err. Foreign errors use their text.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// GetDescription extracts the long explanation from an error, searching the
// chain for the first non-empty description.
func GetDescription(err error) string {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		var customErr *Error
		if !errors.As(cur, &customErr) {
			return ""
		}
		if customErr.Description != "" {
			return customErr.Description
		}
		cur = customErr
	}
	return ""
}

// Present returns the headline and explanation a user-facing surface should
// show for err. Without a description the cause's text explains it.
func Present(err error) (message, description string) {
	if err == nil {
		return "", ""
	}
	message, description = GetMessage(err), GetDescription(err)
	if e, ok := find(err); ok && description == "" && e.Cause != nil {
		description = e.Cause.Error()
	}
	return message, description
}

// Type checking helpers

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsAlreadyExists checks if an error is an already exists error
func IsAlreadyExists(err error) bool {
	return GetCode(err) == CodeAlreadyExists
}

// IsInternal checks if an error is an internal error
func IsInternal(err error) bool {
	return GetCode(err) == CodeInternal
}

// IsFailedPrecondition checks if an error is a failed precondition error
func IsFailedPrecondition(err error) bool {
	return GetCode(err) == CodeFailedPrecondition
}
