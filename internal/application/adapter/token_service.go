// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims holds the verified contents of a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

// TokenService defines the interface for bearer token operations.
type TokenService interface {
	// IssueToken produces a signed token with subject userID and a 7-day
	// expiry.
	IssueToken(userID uuid.UUID) (string, error)

	// VerifyToken validates signature and expiry. Failures are
	// domainerror.ErrExpiredToken or domainerror.ErrInvalidToken; the two
	// map to distinct client retry semantics.
	VerifyToken(token string) (*TokenClaims, error)
}
