// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// AuthErrorCode defines machine-readable codes for authentication errors.
// The token codes are part of the API contract: clients use TOKEN_EXPIRED to
// trigger a re-login and INVALID_TOKEN to reject silently.
type AuthErrorCode string

const (
	ErrCodeEmailExists        AuthErrorCode = "EMAIL_EXISTS"
	ErrCodeInvalidCredentials AuthErrorCode = "INVALID_CREDENTIALS"
	ErrCodeExpiredToken       AuthErrorCode = "TOKEN_EXPIRED"
	ErrCodeInvalidToken       AuthErrorCode = "INVALID_TOKEN"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
