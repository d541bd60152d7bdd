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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Planner errors
	ErrParse             ErrorCode = "PARSE"
	ErrResolution        ErrorCode = "RESOLUTION"
	ErrConflict          ErrorCode = "CONFLICT"
	ErrPolicyUnsupported ErrorCode = "POLICY_UNSUPPORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Editor session errors
	ErrEditorNotFound ErrorCode = "EDITOR_NOT_FOUND"
	ErrEditorExit     ErrorCode = "EDITOR_EXIT"
	ErrTempFile       ErrorCode = "TEMP_FILE"

	// Script emission errors
	ErrScriptRender ErrorCode = "SCRIPT_RENDER"
	ErrScriptWrite  ErrorCode = "SCRIPT_WRITE"
)

// FscodeError represents a structured error with code and details
type FscodeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FscodeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FscodeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FscodeError) Is(target error) bool {
	var targetErr *FscodeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FscodeError with the given code and message
func New(code ErrorCode, message string) *FscodeError {
	return &FscodeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FscodeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FscodeError {
	return &FscodeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FscodeError
func Wrap(err error, code ErrorCode, message string) *FscodeError {
	if err == nil {
		return nil
	}
	return &FscodeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FscodeError {
	if err == nil {
		return nil
	}
	return &FscodeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FscodeError) WithDetail(key string, value interface{}) *FscodeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FscodeError) WithDetails(details map[string]interface{}) *FscodeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fsErr *FscodeError
	if errors.As(err, &fsErr) {
		return fsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FscodeError
func GetErrorCode(err error) ErrorCode {
	var fsErr *FscodeError
	if errors.As(err, &fsErr) {
		return fsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FscodeError
func GetErrorDetails(err error) map[string]interface{} {
	var fsErr *FscodeError
	if errors.As(err, &fsErr) {
		return fsErr.Details
	}
	return nil
}
