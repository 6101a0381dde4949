// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidNumber indicates a missing, non-numeric or infinite value
	TypeInvalidNumber Type = "INVALID_NUMBER"

	// TypeUnknownType indicates a measurement type outside the fixed set
	TypeUnknownType Type = "UNKNOWN_TYPE"

	// TypeUnknownUnit indicates a unit that is not in its (or any) unit table
	TypeUnknownUnit Type = "UNKNOWN_UNIT"

	// TypeTypeMismatch indicates a comparison across measurement types
	TypeTypeMismatch Type = "TYPE_MISMATCH"

	// TypeUnsupportedConversion indicates a pair missing from a formula table
	TypeUnsupportedConversion Type = "UNSUPPORTED_CONVERSION"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface.
// Conversion errors are reported to users verbatim, so the type tag is
// left out of the message.
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

// HasType checks if the error is of a specific type
func (e *Error) HasType(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error, or any error it wraps, is of a specific type
func IsType(err error, t Type) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.HasType(t)
	}
	return false
}

// TypeOf returns the type of a domain error, or TypeInternal for foreign errors
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return TypeInternal
}

// InvalidNumber creates an invalid number error
func InvalidNumber(raw interface{}) *Error {
	return New(TypeInvalidNumber, "invalid numeric value").WithContext("value", raw)
}

// UnknownType creates an unknown measurement type error
func UnknownType(name string) *Error {
	return Newf(TypeUnknownType, "unknown type %s", name).WithContext("type", name)
}

// UnknownUnit creates an error for a unit outside a type's unit table
func UnknownUnit(unit, measurement string) *Error {
	return Newf(TypeUnknownUnit, "unknown unit %q for %s conversion", unit, measurement).
		WithContext("unit", unit)
}

// UnknownAnyUnit creates an error for a unit that belongs to no measurement type
func UnknownAnyUnit(unit string) *Error {
	return Newf(TypeUnknownUnit, "unknown unit %q", unit).WithContext("unit", unit)
}

// MissingUnit creates an error for an omitted unit that has no default
func MissingUnit(measurement string) *Error {
	return Newf(TypeUnknownUnit, "missing unit for %s conversion", measurement)
}

// TypeMismatch creates a cross-type comparison error
func TypeMismatch(a, b string) *Error {
	return New(TypeTypeMismatch, "cannot compare different measurement types").
		WithContext("a", a).
		WithContext("b", b)
}

// UnsupportedConversion creates an error for a pair missing from a formula table
func UnsupportedConversion(measurement, from, to string) *Error {
	return Newf(TypeUnsupportedConversion, "unsupported %s conversion: %s to %s", measurement, from, to)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
