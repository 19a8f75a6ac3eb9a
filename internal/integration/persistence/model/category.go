package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database. The unique
// index on (user_id, name) is partial so deactivated categories free their
// name for reuse.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_user_name,unique,where:is_active"`
	Name        string    `gorm:"type:varchar(50);not null;index:idx_categories_user_name,unique,where:is_active"`
	Icon        string    `gorm:"type:varchar(50);not null"`
	Color       string    `gorm:"type:varchar(7);not null"`
	Description string    `gorm:"type:varchar(200)"`
	IsDefault   bool      `gorm:"not null;default:false"`
	IsActive    bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Icon:        m.Icon,
		Color:       m.Color,
		Description: m.Description,
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CategoryFromEntity converts a domain Category entity to a CategoryModel.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:          category.ID,
		UserID:      category.UserID,
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
