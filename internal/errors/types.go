package errors

import (
	"fmt"
	"strings"
)

// SpecgenError defines the base interface for all generator errors
type SpecgenError interface {
	error
	ErrorCode() ErrorCode
	Location() SourceLocation
	Context() map[string]interface{}
	Suggestions() []string
	Unwrap() error
}

// ErrorCode represents the type of error that occurred
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	ParseErrorCode
	TemplateErrorCode
	GenerationErrorCode
	FileSystemErrorCode
	ConfigurationErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case ParseErrorCode:
		return "ParseError"
	case TemplateErrorCode:
		return "TemplateError"
	case GenerationErrorCode:
		return "GenerationError"
	case FileSystemErrorCode:
		return "FileSystemError"
	case ConfigurationErrorCode:
		return "ConfigurationError"
	default:
		return "UnknownError"
	}
}

// SourceLocation represents the file an error belongs to
type SourceLocation struct {
	File string
}

// String returns a formatted string representation of the location
func (s SourceLocation) String() string {
	if s.File == "" {
		return "unknown location"
	}
	return s.File
}

// IsEmpty returns true if the location has no useful information
func (s SourceLocation) IsEmpty() bool {
	return s.File == ""
}

// BaseError provides a common implementation of the SpecgenError interface
type BaseError struct {
	Code        ErrorCode              // type of error
	Message     string                 // error message
	Loc         SourceLocation         // where the error occurred
	Cause       error                  // underlying error cause
	ContextData map[string]interface{} // additional context information
	Hints       []string               // helpful suggestions for fixing the error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	msg := e.Message
	if !e.Loc.IsEmpty() {
		msg = fmt.Sprintf("%s: %s", e.Loc.String(), msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// ErrorCode returns the error code
func (e *BaseError) ErrorCode() ErrorCode {
	return e.Code
}

// Location returns the source location where the error occurred
func (e *BaseError) Location() SourceLocation {
	return e.Loc
}

// Context returns the error context data
func (e *BaseError) Context() map[string]interface{} {
	if e.ContextData == nil {
		return make(map[string]interface{})
	}
	return e.ContextData
}

// Suggestions returns helpful suggestions for fixing the error
func (e *BaseError) Suggestions() []string {
	return e.Hints
}

// Unwrap returns the underlying error cause for error chain inspection
func (e *BaseError) Unwrap() error {
	return e.Cause
}

// WithLocation adds location information to the error
func (e *BaseError) WithLocation(loc SourceLocation) *BaseError {
	e.Loc = loc
	return e
}

// WithContext adds context data to the error
func (e *BaseError) WithContext(key string, value interface{}) *BaseError {
	if e.ContextData == nil {
		e.ContextData = make(map[string]interface{})
	}
	e.ContextData[key] = value
	return e
}

// WithSuggestions adds helpful suggestions
func (e *BaseError) WithSuggestions(suggestions ...string) *BaseError {
	e.Hints = append(e.Hints, suggestions...)
	return e
}

// New creates a new BaseError with the specified code and message
func New(code ErrorCode, message string) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Hints:   make([]string, 0),
	}
}

// Newf creates a new BaseError with formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BaseError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap creates a new error that wraps another error
func Wrap(code ErrorCode, message string, cause error) *BaseError {
	return &BaseError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Hints:   make([]string, 0),
	}
}

// MultipleErrors represents multiple errors collected together
type MultipleErrors struct {
	Errors []error
}

// Error implements the error interface
func (e *MultipleErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}

	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var messages []string
	for i, err := range e.Errors {
		messages = append(messages, fmt.Sprintf("  %d. %s", i+1, err.Error()))
	}

	return fmt.Sprintf("multiple errors (%d total):\n%s", len(e.Errors), strings.Join(messages, "\n"))
}

// Unwrap returns all collected errors for errors.Is and errors.As
func (e *MultipleErrors) Unwrap() []error {
	return e.Errors
}

// Add adds an error to the collection, ignoring nil
func (e *MultipleErrors) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// IsEmpty returns true if there are no errors
func (e *MultipleErrors) IsEmpty() bool {
	return len(e.Errors) == 0
}

// ErrorOrNil returns nil when the collection is empty
func (e *MultipleErrors) ErrorOrNil() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// NewMultipleErrors creates a new MultipleErrors collection
func NewMultipleErrors() *MultipleErrors {
	return &MultipleErrors{
		Errors: make([]error, 0),
	}
}
