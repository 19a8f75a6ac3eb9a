package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PreferencesRequest represents a partial preferences update.
type PreferencesRequest struct {
	Currency valueobject.Optional[string] `json:"currency"`
	Theme    valueobject.Optional[string] `json:"theme"`
}

// UpdateProfileRequest represents the request body for profile updates.
// Omitted fields keep their stored values.
type UpdateProfileRequest struct {
	Name        valueobject.Optional[string] `json:"name"`
	Avatar      valueobject.Optional[string] `json:"avatar"`
	Preferences *PreferencesRequest          `json:"preferences"`
}

// PreferencesResponse represents user preferences in API responses.
type PreferencesResponse struct {
	Currency string `json:"currency"`
	Theme    string `json:"theme"`
}

// UserResponse represents the user data in API responses. The password hash
// never leaves the server.
type UserResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Avatar      string              `json:"avatar,omitempty"`
	Preferences PreferencesResponse `json:"preferences"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// AuthResponse represents the response for register and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse represents the response for profile endpoints.
type ProfileResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// ToUserResponse converts a domain User entity to a UserResponse.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:     user.ID.String(),
		Name:   user.Name,
		Email:  user.Email,
		Avatar: user.Avatar,
		Preferences: PreferencesResponse{
			Currency: user.Preferences.Currency,
			Theme:    string(user.Preferences.Theme),
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
