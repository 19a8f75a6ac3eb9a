package category

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// memCategoryRepo is an in-memory CategoryRepository with the same
// uniqueness behavior as the real one.
type memCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (m *memCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	for _, existing := range m.categories {
		if existing.UserID == category.UserID && existing.IsActive && category.IsActive &&
			existing.Name == category.Name {
			return domainerror.ErrCategoryNameExists
		}
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *memCategoryRepo) CreateMany(ctx context.Context, categories []*entity.Category) error {
	for _, category := range categories {
		if err := m.Create(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

func (m *memCategoryRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := m.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *category
	return &copied, nil
}

func (m *memCategoryRepo) FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := m.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (m *memCategoryRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var result []*entity.Category
	for _, category := range m.categories {
		if category.UserID == userID && category.IsActive {
			copied := *category
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *memCategoryRepo) ExistsActiveByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	for _, category := range m.categories {
		if category.UserID == userID && category.IsActive && category.ID != excludeID &&
			strings.EqualFold(category.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	if _, ok := m.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}
