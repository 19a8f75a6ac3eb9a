// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence operations.
type CategoryRepository interface {
	// Create creates a new category. A partial unique index on
	// (user_id, name) among active rows backs the service-level duplicate
	// check; violations surface as domainerror.ErrCategoryNameExists.
	Create(ctx context.Context, category *entity.Category) error

	// CreateMany creates a batch of categories in one transaction. Used
	// for default-category seeding.
	CreateMany(ctx context.Context, categories []*entity.Category) error

	// FindByIDAndUser retrieves a category scoped to its owner, regardless
	// of active state.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindActiveByIDAndUser retrieves an active category scoped to its owner.
	FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error)

	// FindActiveByUser retrieves all active categories for a user, name ascending.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error)

	// ExistsActiveByName checks, case-insensitively, whether an active
	// category with the given name exists for the user, excluding the
	// category identified by excludeID (uuid.Nil to exclude none).
	ExistsActiveByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error)

	// Update updates an existing category.
	Update(ctx context.Context, category *entity.Category) error
}
