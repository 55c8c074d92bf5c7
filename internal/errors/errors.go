// Package errors provides a lightweight structured error type (LoaderError)
// for category-based classification across the loader pipeline and CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a loader error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content processing errors
	CategoryParse      ErrorCategory = "parse"
	CategoryLocale     ErrorCategory = "locale"
	CategoryFileSystem ErrorCategory = "filesystem"

	// Output and infrastructure errors
	CategoryCodegen  ErrorCategory = "codegen"
	CategoryIndex    ErrorCategory = "index"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops the current compilation
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// LoaderError is a structured error with category, severity, and context
type LoaderError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for LoaderError
type ContextFields map[string]any

// Error implements the error interface
func (e *LoaderError) Error() string {
	msg := e.Message
	if path, ok := e.Context["path"].(string); ok && path != "" {
		msg = fmt.Sprintf("%s: %s", e.Message, path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, msg, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, msg)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *LoaderError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *LoaderError) WithContext(key string, value any) *LoaderError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new LoaderError
func New(category ErrorCategory, severity ErrorSeverity, message string) *LoaderError {
	return &LoaderError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new LoaderError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *LoaderError {
	return &LoaderError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory reports whether err is a LoaderError of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	le, ok := err.(*LoaderError)
	return ok && le.Category == category
}
