// Package errors provides a lightweight structured error type (SiteError)
// used to classify configuration failures for the CLI and log output.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrInvalidConfiguration is the sentinel every load failure matches via errors.Is.
var ErrInvalidConfiguration = stderrors.New("invalid configuration")

// ErrorCategory represents the category of a SiteError for classification.
type ErrorCategory string

const (
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded output
)

// ContextFields carries structured context for SiteError.
type ContextFields map[string]any

// SiteError is a structured error with category, severity and context.
type SiteError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`

	// invalid marks errors that surface as ErrInvalidConfiguration.
	invalid bool
}

// Error implements the error interface.
func (e *SiteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap exposes the cause for errors.Is / errors.As.
func (e *SiteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrInvalidConfiguration for errors raised by the loader.
func (e *SiteError) Is(target error) bool {
	return e.invalid && target == ErrInvalidConfiguration
}

// WithContext adds context information to the error.
func (e *SiteError) WithContext(key string, value any) *SiteError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new SiteError.
func New(category ErrorCategory, severity ErrorSeverity, message string) *SiteError {
	return &SiteError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new SiteError that wraps an existing error.
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *SiteError {
	return &SiteError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error (or anything it wraps) belongs to a specific category.
func IsCategory(err error, category ErrorCategory) bool {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal.
func GetCategory(err error) ErrorCategory {
	var se *SiteError
	if stderrors.As(err, &se) {
		return se.Category
	}
	return CategoryInternal
}
