package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsNotAllowed = errors.New("value is not allowed")
	ErrValueIsTooLong    = errors.New("value is too long")
)

// sanitize keeps user supplied values on a single line.
func sanitize(v any) string {
	s := fmt.Sprintf("%v", v)
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\r", " ")), " ")
}

func unwrapWithCause(sentinel, cause error) []error {
	if cause == nil {
		return []error{sentinel}
	}
	return []error{sentinel, cause}
}

// ObjectNotFoundError is returned by repositories when nothing matches the lookup key.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %v)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() []error {
	return unwrapWithCause(ErrObjectNotFound, e.Cause)
}

// ValueIsInvalidError reports a value that failed a format or consistency check.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsInvalid, e.Cause)
}

// ValueIsOutOfRangeError reports a value outside of the closed interval [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsOutOfRange, e.Cause)
}

// ValueIsRequiredError reports a missing mandatory value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsRequired, e.Cause)
}

// ValueIsNotAllowedError reports a value that is not a member of a closed set.
type ValueIsNotAllowedError struct {
	ParamName string
	Value     any
	Allowed   []string
	Cause     error
}

func NewValueIsNotAllowedError(paramName string, value any, allowed []string) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{ParamName: paramName, Value: value, Allowed: allowed}
}

func NewValueIsNotAllowedErrorWithCause(
	paramName string,
	value any,
	allowed []string,
	cause error,
) *ValueIsNotAllowedError {
	return &ValueIsNotAllowedError{ParamName: paramName, Value: value, Allowed: allowed, Cause: cause}
}

func (e *ValueIsNotAllowedError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, allowed values are %s",
		ErrValueIsNotAllowed, sanitize(e.Value), e.ParamName, strings.Join(e.Allowed, ", "))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsNotAllowedError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsNotAllowed, e.Cause)
}

// ValueIsTooLongError reports a text value longer than MaxLength characters.
type ValueIsTooLongError struct {
	ParamName string
	Length    int
	MaxLength int
	Cause     error
}

func NewValueIsTooLongError(paramName string, length, maxLength int) *ValueIsTooLongError {
	return &ValueIsTooLongError{ParamName: paramName, Length: length, MaxLength: maxLength}
}

func NewValueIsTooLongErrorWithCause(paramName string, length, maxLength int, cause error) *ValueIsTooLongError {
	return &ValueIsTooLongError{ParamName: paramName, Length: length, MaxLength: maxLength, Cause: cause}
}

func (e *ValueIsTooLongError) Error() string {
	msg := fmt.Sprintf("%s: %s has %d characters, max length is %d",
		ErrValueIsTooLong, e.ParamName, e.Length, e.MaxLength)
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ValueIsTooLongError) Unwrap() []error {
	return unwrapWithCause(ErrValueIsTooLong, e.Cause)
}
