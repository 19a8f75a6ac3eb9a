// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Theme represents the user's preferred UI theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultCurrency is the currency assigned to new users.
const DefaultCurrency = "USD"

// Preferences holds per-user display preferences.
type Preferences struct {
	Currency string
	Theme    Theme
}

// User represents a registered user of the expense tracker.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Avatar       string
	Preferences  Preferences
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default preferences.
// Email is expected to be normalized (lower case, trimmed) by the caller.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Preferences: Preferences{
			Currency: DefaultCurrency,
			Theme:    ThemeLight,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
