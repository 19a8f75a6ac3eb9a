// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// FieldError describes a single failed field validation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the envelope for every failed request.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
	Code    string       `json:"code,omitempty"`
}

// NewErrorResponse builds an error envelope with a message and machine code.
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Message: message,
		Code:    code,
	}
}

// NewValidationErrorResponse builds the envelope for a failed validation,
// listing every violated field.
func NewValidationErrorResponse(verr *domainerror.ValidationError) ErrorResponse {
	fieldErrors := make([]FieldError, len(verr.Violations))
	for i, violation := range verr.Violations {
		fieldErrors[i] = FieldError{
			Field:   violation.Field,
			Message: violation.Message,
		}
	}
	return ErrorResponse{
		Success: false,
		Message: "Validation failed",
		Errors:  fieldErrors,
		Code:    "VALIDATION_ERROR",
	}
}

// MessageResponse is the envelope for successful requests that return no
// payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
