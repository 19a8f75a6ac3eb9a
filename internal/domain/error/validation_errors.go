// Package error defines domain-specific errors for the expense tracker.
package error

import "strings"

// FieldViolation describes a single invalid input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError carries field-level validation failures. Validation runs
// in the use case layer before any store mutation.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		messages[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Add records a violation for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasViolations reports whether any violation was recorded.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
