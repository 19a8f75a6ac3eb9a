// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// tokenService implements the adapter.TokenService interface using HS256
// signed JWTs.
type tokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:   []byte(secret),
		issuer:   "expense-tracker",
		duration: duration,
	}
}

// IssueToken signs a new token carrying the user id as subject.
func (s *tokenService) IssueToken(userID uuid.UUID) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token. Expired tokens are reported
// distinctly from otherwise malformed or tampered ones.
func (s *tokenService) VerifyToken(tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
