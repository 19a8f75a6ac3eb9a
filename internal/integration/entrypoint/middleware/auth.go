// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
)

// callerKey is the gin context key for the authenticated caller.
const callerKey = "caller"

// CallerIdentity describes the authenticated user for downstream handlers.
type CallerIdentity struct {
	UserID uuid.UUID
	Email  string
}

// AuthMiddleware provides JWT authentication middleware.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	userRepo     adapter.UserRepository
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, userRepo adapter.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		userRepo:     userRepo,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT
// authentication. The token's user must still exist, so tokens of deleted
// accounts stop working.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization token is required", string(domainerror.ErrCodeInvalidToken))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			abortUnauthorized(c, "Authorization token is required", string(domainerror.ErrCodeInvalidToken))
			return
		}

		claims, err := m.tokenService.VerifyToken(token)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpiredToken) {
				abortUnauthorized(c, "Token has expired", string(domainerror.ErrCodeExpiredToken))
				return
			}
			abortUnauthorized(c, "Invalid token", string(domainerror.ErrCodeInvalidToken))
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			abortUnauthorized(c, "Invalid token", string(domainerror.ErrCodeInvalidToken))
			return
		}

		c.Set(callerKey, CallerIdentity{
			UserID: user.ID,
			Email:  user.Email,
		})
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message, code))
}

// CallerFromContext extracts the authenticated caller from the Gin context.
func CallerFromContext(c *gin.Context) (CallerIdentity, bool) {
	value, exists := c.Get(callerKey)
	if !exists {
		return CallerIdentity{}, false
	}
	caller, ok := value.(CallerIdentity)
	return caller, ok
}
