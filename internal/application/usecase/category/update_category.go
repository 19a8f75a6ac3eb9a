// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpdateCategoryInput represents the input for a category update. Omitted
// fields are left unchanged; description set to null clears it.
type UpdateCategoryInput struct {
	CategoryID  uuid.UUID
	UserID      uuid.UUID
	Name        valueobject.Optional[string]
	Icon        valueobject.Optional[string]
	Color       valueobject.Optional[string]
	Description valueobject.Optional[string]
}

// UpdateCategoryUseCase handles category update logic.
type UpdateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(categoryRepo adapter.CategoryRepository) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindActiveByIDAndUser(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	if name, ok := input.Name.Value(); ok {
		name = strings.TrimSpace(name)
		if err := validateCategoryFields(name, "", ""); err != nil {
			return nil, err
		}
		if !strings.EqualFold(name, category.Name) {
			exists, err := uc.categoryRepo.ExistsActiveByName(ctx, input.UserID, name, category.ID)
			if err != nil {
				return nil, fmt.Errorf("failed to check category name: %w", err)
			}
			if exists {
				return nil, domainerror.ErrCategoryNameExists
			}
		}
		category.Name = name
	}

	if icon, ok := input.Icon.Value(); ok {
		category.Icon = icon
	}

	if color, ok := input.Color.Value(); ok {
		if err := validateCategoryFields(category.Name, color, ""); err != nil {
			return nil, err
		}
		category.Color = color
	}

	if input.Description.Present() {
		if description, ok := input.Description.Value(); ok {
			if err := validateCategoryFields(category.Name, "", description); err != nil {
				return nil, err
			}
			category.Description = description
		} else {
			category.Description = ""
		}
	}

	category.UpdatedAt = time.Now().UTC()

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.ErrCategoryNameExists
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	return category, nil
}
