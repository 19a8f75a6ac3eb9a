package dto

import (
	"time"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name        valueobject.Optional[string] `json:"name"`
	Icon        valueobject.Optional[string] `json:"icon"`
	Color       valueobject.Optional[string] `json:"color"`
	Description valueobject.Optional[string] `json:"description"`
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Description string    `json:"description,omitempty"`
	IsDefault   bool      `json:"isDefault"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CategoryListResponse represents the response for category listing.
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
}

// SingleCategoryResponse represents the response for category create and
// update.
type SingleCategoryResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Category CategoryResponse `json:"category"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Icon:        category.Icon,
		Color:       category.Color,
		Description: category.Description,
		IsDefault:   category.IsDefault,
		IsActive:    category.IsActive,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
