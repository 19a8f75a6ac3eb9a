// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#3B82F6"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "fas fa-tag"

// Category represents a spending category owned by a single user.
// Categories are never hard-deleted; IsActive is the soft-delete marker so
// historical expenses keep a resolvable reference.
type Category struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Icon        string
	Color       string
	Description string
	IsDefault   bool
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a new active Category entity.
// Defaulting of icon and color is applied in the use case layer before
// calling this constructor.
func NewCategory(userID uuid.UUID, name, icon, color, description string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Icon:        icon,
		Color:       color,
		Description: description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// defaultCategorySeed describes one of the categories seeded for new users.
type defaultCategorySeed struct {
	Name  string
	Icon  string
	Color string
}

var defaultCategorySeeds = []defaultCategorySeed{
	{Name: "Food & Dining", Icon: "fas fa-utensils", Color: "#EF4444"},
	{Name: "Transportation", Icon: "fas fa-car", Color: "#3B82F6"},
	{Name: "Shopping", Icon: "fas fa-shopping-bag", Color: "#8B5CF6"},
	{Name: "Entertainment", Icon: "fas fa-film", Color: "#F59E0B"},
	{Name: "Bills & Utilities", Icon: "fas fa-file-invoice-dollar", Color: "#10B981"},
	{Name: "Healthcare", Icon: "fas fa-heartbeat", Color: "#F97316"},
	{Name: "Travel", Icon: "fas fa-plane", Color: "#06B6D4"},
	{Name: "Education", Icon: "fas fa-graduation-cap", Color: "#6366F1"},
	{Name: "Personal Care", Icon: "fas fa-spa", Color: "#EC4899"},
	{Name: "Other", Icon: "fas fa-ellipsis-h", Color: "#6B7280"},
}

// DefaultCategories builds the set of default categories seeded for a newly
// registered user.
func DefaultCategories(userID uuid.UUID) []*Category {
	categories := make([]*Category, len(defaultCategorySeeds))
	for i, seed := range defaultCategorySeeds {
		category := NewCategory(userID, seed.Name, seed.Icon, seed.Color, "")
		category.IsDefault = true
		categories[i] = category
	}
	return categories
}
