// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plain text password with a memory/CPU-hard
	// function (bcrypt cost 12).
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plain text password with a hashed password.
	// Returns an error if they don't match.
	VerifyPassword(hashedPassword, password string) error
}
