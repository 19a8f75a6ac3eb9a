// Package category contains category-related use cases.
package category

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// DeleteCategoryUseCase handles category soft deletion.
type DeleteCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categoryRepo adapter.CategoryRepository) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute soft-deletes the category: it is hidden from listings and
// duplicate-name checks, but expenses referencing it keep resolving its
// display data.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := uc.categoryRepo.FindActiveByIDAndUser(ctx, categoryID, userID)
	if err != nil {
		return err
	}

	category.IsActive = false
	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
