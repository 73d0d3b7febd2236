package errors

import (
	"errors"
	"fmt"
	"sort"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Descriptor errors
	ErrDescriptorRead    ErrorCode = "DESCRIPTOR_READ"
	ErrDescriptorParse   ErrorCode = "DESCRIPTOR_PARSE"
	ErrDescriptorInvalid ErrorCode = "DESCRIPTOR_INVALID"
	ErrDescriptorVersion ErrorCode = "DESCRIPTOR_VERSION"
	ErrDescriptorCycle   ErrorCode = "DESCRIPTOR_CYCLE"

	// Pack graph errors
	ErrPackNotFound         ErrorCode = "PACK_NOT_FOUND"
	ErrDuplicatePack        ErrorCode = "DUPLICATE_PACK"
	ErrUnresolvedDependency ErrorCode = "UNRESOLVED_DEPENDENCY"
	ErrCyclicDependency     ErrorCode = "CYCLIC_DEPENDENCY"
	ErrDependencyTooDeep    ErrorCode = "DEPENDENCY_TOO_DEEP"

	// Exclusion errors
	ErrConflictingPreselection ErrorCode = "CONFLICTING_PRESELECTION"
)

// PackError represents a structured error with code and details
type PackError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PackError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PackError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PackError) Is(target error) bool {
	var targetErr *PackError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PackError with the given code and message
func New(code ErrorCode, message string) *PackError {
	return &PackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PackError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PackError {
	return &PackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PackError
func Wrap(err error, code ErrorCode, message string) *PackError {
	if err == nil {
		return nil
	}
	return &PackError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PackError {
	if err == nil {
		return nil
	}
	return &PackError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PackError) WithDetail(key string, value interface{}) *PackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PackError) WithDetails(details map[string]interface{}) *PackError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// DetailKeys returns the detail keys in sorted order, for stable rendering.
func (e *PackError) DetailKeys() []string {
	keys := make([]string, 0, len(e.Details))
	for k := range e.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var packErr *PackError
	if errors.As(err, &packErr) {
		return packErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PackError
func GetErrorCode(err error) ErrorCode {
	var packErr *PackError
	if errors.As(err, &packErr) {
		return packErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PackError
func GetErrorDetails(err error) map[string]interface{} {
	var packErr *PackError
	if errors.As(err, &packErr) {
		return packErr.Details
	}
	return nil
}
