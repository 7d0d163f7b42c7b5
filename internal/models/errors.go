package models

import "fmt"

// ErrorType represents different types of generator errors
type ErrorType int

const (
	ErrorTypeDescriptor ErrorType = iota
	ErrorTypeValidation
	ErrorTypeGeneration
	ErrorTypeFileSystem
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeDescriptor:
		return "descriptor"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeGeneration:
		return "generation"
	case ErrorTypeFileSystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// GeneratorError represents an error that occurred while generating one spec file
type GeneratorError struct {
	Type        ErrorType // type of error
	File        string    // source file the error belongs to
	Message     string    // error message
	Cause       error     // underlying error cause
	Suggestions []string  // hints for fixing the error
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}
