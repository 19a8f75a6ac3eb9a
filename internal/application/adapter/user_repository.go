// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create creates a new user. A unique index on email backs the
	// service-level duplicate check; violations surface as
	// domainerror.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update updates an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ExistsByEmail checks if a user with the given normalized email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
