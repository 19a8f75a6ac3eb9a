// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxCategoryNameLength is the maximum allowed length for category names.
	MaxCategoryNameLength = 50
	// MaxDescriptionLength is the maximum allowed length for category descriptions.
	MaxDescriptionLength = 200
)

// hexColorRegex accepts #RGB and #RRGGBB.
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}){1,2}$`)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID      uuid.UUID
	Name        string
	Icon        string
	Color       string
	Description string
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)

	if err := validateCategoryFields(name, input.Color, input.Description); err != nil {
		return nil, err
	}

	// Case-insensitive duplicate check among active categories; the
	// partial unique index backs it under races.
	exists, err := uc.categoryRepo.ExistsActiveByName(ctx, input.UserID, name, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if exists {
		return nil, domainerror.ErrCategoryNameExists
	}

	icon := input.Icon
	if icon == "" {
		icon = entity.DefaultCategoryIcon
	}
	color := input.Color
	if color == "" {
		color = entity.DefaultCategoryColor
	}

	category := entity.NewCategory(input.UserID, name, icon, color, input.Description)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, domainerror.ErrCategoryNameExists) {
			return nil, domainerror.ErrCategoryNameExists
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func validateCategoryFields(name, color, description string) error {
	verr := &domainerror.ValidationError{}
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength {
		verr.Add("name", fmt.Sprintf("category name must be between 1 and %d characters", MaxCategoryNameLength))
	}
	if color != "" && !hexColorRegex.MatchString(color) {
		verr.Add("color", "please provide a valid hex color")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		verr.Add("description", fmt.Sprintf("description cannot exceed %d characters", MaxDescriptionLength))
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}
