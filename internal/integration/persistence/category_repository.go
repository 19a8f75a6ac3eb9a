package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// categoryRepository implements the adapter.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) adapter.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category. A unique violation on (user_id, name) is
// translated to ErrCategoryNameExists.
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Create(categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}

// CreateMany inserts a batch of categories in one statement. Used for
// seeding defaults at registration.
func (r *categoryRepository) CreateMany(ctx context.Context, categories []*entity.Category) error {
	if len(categories) == 0 {
		return nil
	}
	categoryModels := make([]*model.CategoryModel, len(categories))
	for i, category := range categories {
		categoryModels[i] = model.CategoryFromEntity(category)
	}
	return r.db.WithContext(ctx).Create(categoryModels).Error
}

// FindByIDAndUser retrieves a category by id scoped to its owner, active or
// not.
func (r *categoryRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindActiveByIDAndUser retrieves an active category by id scoped to its
// owner.
func (r *categoryRepository) FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	var categoryModel model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ? AND is_active = ?", id, userID, true).
		First(&categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCategoryNotFound
		}
		return nil, result.Error
	}
	return categoryModel.ToEntity(), nil
}

// FindActiveByUser lists a user's active categories ordered by name.
func (r *categoryRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categoryModels []model.CategoryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("name ASC").
		Find(&categoryModels)
	if result.Error != nil {
		return nil, result.Error
	}

	categories := make([]*entity.Category, len(categoryModels))
	for i, cm := range categoryModels {
		categories[i] = cm.ToEntity()
	}
	return categories, nil
}

// ExistsActiveByName checks for an active category with the given name,
// compared case-insensitively. excludeID skips a row, pass uuid.Nil to check
// all rows.
func (r *categoryRepository) ExistsActiveByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&model.CategoryModel{}).
		Where("user_id = ? AND is_active = ? AND LOWER(name) = LOWER(?)", userID, true, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Update persists changes to an existing category. A unique violation on
// rename is translated to ErrCategoryNameExists.
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	categoryModel := model.CategoryFromEntity(category)
	result := r.db.WithContext(ctx).Save(categoryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domainerror.ErrCategoryNameExists
		}
		return result.Error
	}
	return nil
}
