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

	// Host errors
	ErrUnsupportedOS       ErrorCode = "UNSUPPORTED_OS"
	ErrPrerequisiteMissing ErrorCode = "PREREQUISITE_MISSING"
	ErrUserDeclined        ErrorCode = "USER_DECLINED"

	// Command errors
	ErrCommandFailed ErrorCode = "COMMAND_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
	ErrPathEscape ErrorCode = "PATH_ESCAPE"
)

// BootError represents a structured error with code and details
type BootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BootError) Is(target error) bool {
	var targetErr *BootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BootError with the given code and message
func New(code ErrorCode, message string) *BootError {
	return &BootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BootError {
	return &BootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BootError
func Wrap(err error, code ErrorCode, message string) *BootError {
	if err == nil {
		return nil
	}
	return &BootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BootError {
	if err == nil {
		return nil
	}
	return &BootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BootError) WithDetail(key string, value interface{}) *BootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BootError
func GetErrorCode(err error) ErrorCode {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BootError
func GetErrorDetails(err error) map[string]interface{} {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Details
	}
	return nil
}

// UserMessage returns the message meant for the terminal: the outermost
// BootError message without the code prefix, or err.Error() otherwise.
func UserMessage(err error) string {
	var bootErr *BootError
	if errors.As(err, &bootErr) {
		return bootErr.Message
	}
	return err.Error()
}

// ExitCode maps an error to the process exit status.
// The tool aborts with status 1 on every failure, nil maps to 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
