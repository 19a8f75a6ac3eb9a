package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeTokenService struct {
	claims *adapter.TokenClaims
	err    error
}

func (f *fakeTokenService) IssueToken(userID uuid.UUID) (string, error) {
	return "token", nil
}

func (f *fakeTokenService) VerifyToken(token string) (*adapter.TokenClaims, error) {
	return f.claims, f.err
}

type fakeUserRepo struct {
	user *entity.User
	err  error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return f.user, f.err
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.user, f.err
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func newTestRouter(tokenService adapter.TokenService, userRepo adapter.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	authMiddleware := NewAuthMiddleware(tokenService, userRepo)
	router.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		caller, ok := CallerFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no caller"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"userId": caller.UserID.String()})
	})
	return router
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	user := entity.NewUser("Alice", "alice@example.com", "hash")
	tokenService := &fakeTokenService{
		claims: &adapter.TokenClaims{UserID: user.ID, ExpiresAt: time.Now().Add(time.Hour)},
	}
	router := newTestRouter(tokenService, &fakeUserRepo{user: user})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["userId"] != user.ID.String() {
		t.Errorf("userId = %q, want %q", body["userId"], user.ID.String())
	}
}

func TestAuthMiddlewareRejections(t *testing.T) {
	user := entity.NewUser("Alice", "alice@example.com", "hash")

	tests := []struct {
		name         string
		header       string
		tokenService *fakeTokenService
		userRepo     *fakeUserRepo
		wantCode     string
	}{
		{
			name:         "missing header",
			header:       "",
			tokenService: &fakeTokenService{},
			userRepo:     &fakeUserRepo{user: user},
			wantCode:     "INVALID_TOKEN",
		},
		{
			name:         "wrong scheme",
			header:       "Basic abc123",
			tokenService: &fakeTokenService{},
			userRepo:     &fakeUserRepo{user: user},
			wantCode:     "INVALID_TOKEN",
		},
		{
			name:         "expired token",
			header:       "Bearer expired",
			tokenService: &fakeTokenService{err: domainerror.ErrExpiredToken},
			userRepo:     &fakeUserRepo{user: user},
			wantCode:     "TOKEN_EXPIRED",
		},
		{
			name:         "invalid token",
			header:       "Bearer garbage",
			tokenService: &fakeTokenService{err: domainerror.ErrInvalidToken},
			userRepo:     &fakeUserRepo{user: user},
			wantCode:     "INVALID_TOKEN",
		},
		{
			name:   "user no longer exists",
			header: "Bearer valid",
			tokenService: &fakeTokenService{
				claims: &adapter.TokenClaims{UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)},
			},
			userRepo: &fakeUserRepo{err: domainerror.ErrUserNotFound},
			wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(tt.tokenService, tt.userRepo)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			var body struct {
				Success bool   `json:"success"`
				Code    string `json:"code"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", body.Code, tt.wantCode)
			}
		})
	}
}
