// Package category contains category-related use cases.
package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ListCategoriesUseCase handles listing a user's active categories.
type ListCategoriesUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categoryRepo adapter.CategoryRepository) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute returns the caller's active categories, name ascending.
// Soft-deleted categories are hidden here but remain resolvable for
// historical expenses.
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return uc.categoryRepo.FindActiveByUser(ctx, userID)
}
