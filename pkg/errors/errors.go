package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Store errors
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Merge errors
	ErrParseFailure ErrorCode = "PARSE_FAILURE"

	// Filesystem errors
	ErrIOFailure ErrorCode = "IO_FAILURE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"
)

// McpconfError represents a structured error with code and details
type McpconfError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *McpconfError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *McpconfError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *McpconfError) Is(target error) bool {
	var targetErr *McpconfError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new McpconfError with the given code and message
func New(code ErrorCode, message string) *McpconfError {
	return &McpconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new McpconfError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *McpconfError {
	return &McpconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a McpconfError
func Wrap(err error, code ErrorCode, message string) *McpconfError {
	if err == nil {
		return nil
	}
	return &McpconfError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *McpconfError {
	if err == nil {
		return nil
	}
	return &McpconfError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *McpconfError) WithDetail(key string, value interface{}) *McpconfError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var confErr *McpconfError
	if errors.As(err, &confErr) {
		return confErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a McpconfError
func GetErrorCode(err error) ErrorCode {
	var confErr *McpconfError
	if errors.As(err, &confErr) {
		return confErr.Code
	}
	return ErrUnknown
}
