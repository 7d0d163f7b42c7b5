package errors

import "fmt"

// Common error wrapping patterns used throughout the codebase

// WrapParseError wraps an error with a "failed to parse" message
func WrapParseError(item string, cause error) *BaseError {
	return Wrap(ParseErrorCode, fmt.Sprintf("failed to parse %s", item), cause)
}

// WrapFileSystemError wraps file system related errors
func WrapFileSystemError(operation, path string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s file '%s'", operation, path)
	return Wrap(FileSystemErrorCode, message, cause).
		WithContext("operation", operation).
		WithContext("path", path)
}

// WrapTemplateError wraps template processing errors
func WrapTemplateError(templateName, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s template '%s'", operation, templateName)
	return Wrap(TemplateErrorCode, message, cause).
		WithContext("template", templateName)
}

// WrapGenerateError wraps an error with a "failed to generate" message
func WrapGenerateError(item string, cause error) *BaseError {
	return Wrap(GenerationErrorCode, fmt.Sprintf("failed to generate %s", item), cause)
}

// WrapConfigurationError wraps configuration-related errors
func WrapConfigurationError(configType, operation string, cause error) *BaseError {
	message := fmt.Sprintf("failed to %s configuration '%s'", operation, configType)
	return Wrap(ConfigurationErrorCode, message, cause).
		WithContext("config_type", configType).
		WithContext("operation", operation)
}
