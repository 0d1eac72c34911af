// Package errors provides coded, structured errors for wwmod.
//
// Every failure surfaced by the mod tools carries an ErrorCode so callers
// and tests can branch on the category (configuration, filesystem, external
// process) without matching on message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrConfigParse    ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrConfigSave     ErrorCode = "CONFIG_SAVE"
	ErrSettingMissing ErrorCode = "SETTING_MISSING"
	ErrChunkMissing   ErrorCode = "CHUNK_MISSING"

	// Mod errors
	ErrModNotFound          ErrorCode = "MOD_NOT_FOUND"
	ErrModParse             ErrorCode = "MOD_PARSE"
	ErrModNotMoved          ErrorCode = "MOD_NOT_MOVED"
	ErrPakNotFound          ErrorCode = "PAK_NOT_FOUND"
	ErrPublishNotConfigured ErrorCode = "PUBLISH_NOT_CONFIGURED"
	ErrDescriptorEncode     ErrorCode = "DESCRIPTOR_ENCODE"

	// FileSystem errors
	ErrUnsafePath   ErrorCode = "UNSAFE_PATH"
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileDelete   ErrorCode = "FILE_DELETE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrDirNotFound  ErrorCode = "DIR_NOT_FOUND"

	// External process errors
	ErrProcessStart ErrorCode = "PROCESS_START"
	ErrProcessExit  ErrorCode = "PROCESS_EXIT"
)

// Error represents a structured error with code and details
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches any *Error carrying the same code
func (e *Error) Is(target error) bool {
	var targetErr *Error
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new Error with the given code and message
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new Error with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *Error) WithDetails(details map[string]interface{}) *Error {
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
	var wwErr *Error
	if errors.As(err, &wwErr) {
		return wwErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var wwErr *Error
	if errors.As(err, &wwErr) {
		return wwErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var wwErr *Error
	if errors.As(err, &wwErr) {
		return wwErr.Details
	}
	return nil
}

// GetErrorMessage returns the error text without the code prefix, for
// outputs that report the code separately
func GetErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	e, ok := err.(*Error)
	if !ok {
		return err.Error()
	}
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}
