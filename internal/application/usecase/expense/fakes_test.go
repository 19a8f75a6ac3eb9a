package expense

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory adapter.CategoryRepository with just
// enough behavior for expense use cases: ownership and active scoping.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, category := range categories {
		repo.categories[category.ID] = category
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) CreateMany(ctx context.Context, categories []*entity.Category) error {
	for _, category := range categories {
		if err := r.Create(ctx, category); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeCategoryRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok || category.UserID != userID {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := r.FindByIDAndUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if !category.IsActive {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var active []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID && category.IsActive {
			active = append(active, category)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Name < active[j].Name })
	return active, nil
}

func (r *fakeCategoryRepo) ExistsActiveByName(_ context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.IsActive &&
			category.ID != excludeID && strings.EqualFold(category.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	r.categories[category.ID] = category
	return nil
}

// memExpenseRepo is an in-memory adapter.ExpenseRepository. FindByFilter
// records the arguments it receives so tests can assert on the query the use
// case built; it returns a canned result instead of filtering.
type memExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense

	lastFilter     adapter.ExpenseFilter
	lastSort       adapter.ExpenseSort
	lastPagination adapter.ExpensePagination
	listResult     *entity.ExpenseListResult

	statsRows []entity.CategoryBreakdown
	statsErr  error
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *memExpenseRepo) Create(_ context.Context, expense *entity.Expense) error {
	stored := *expense
	r.expenses[expense.ID] = &stored
	return nil
}

func (r *memExpenseRepo) FindByIDAndUser(_ context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return nil, domainerror.ErrExpenseNotFound
	}
	copied := *expense
	return &copied, nil
}

func (r *memExpenseRepo) FindByFilter(_ context.Context, filter adapter.ExpenseFilter, sort adapter.ExpenseSort, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	r.lastFilter = filter
	r.lastSort = sort
	r.lastPagination = pagination
	if r.listResult != nil {
		return r.listResult, nil
	}
	return &entity.ExpenseListResult{
		Expenses:   []*entity.ExpenseWithCategory{},
		Page:       pagination.Page,
		Limit:      pagination.Limit,
		TotalPages: 1,
	}, nil
}

func (r *memExpenseRepo) GetStats(_ context.Context, _ uuid.UUID, _, _ time.Time) ([]entity.CategoryBreakdown, error) {
	if r.statsErr != nil {
		return nil, r.statsErr
	}
	return r.statsRows, nil
}

func (r *memExpenseRepo) Update(_ context.Context, expense *entity.Expense) error {
	if _, ok := r.expenses[expense.ID]; !ok {
		return domainerror.ErrExpenseNotFound
	}
	stored := *expense
	r.expenses[expense.ID] = &stored
	return nil
}

func (r *memExpenseRepo) DeleteByIDAndUser(_ context.Context, id, userID uuid.UUID) (bool, error) {
	expense, ok := r.expenses[id]
	if !ok || expense.UserID != userID {
		return false, nil
	}
	delete(r.expenses, id)
	return true, nil
}

// fakeStatsCache is an in-memory adapter.StatsCache that counts invalidations
// and lets tests plant a cached entry or inject failures.
type fakeStatsCache struct {
	entries     map[string]*entity.ExpenseStats
	invalidated int
	sets        int
	getErr      error
	setErr      error
}

func newFakeStatsCache() *fakeStatsCache {
	return &fakeStatsCache{entries: make(map[string]*entity.ExpenseStats)}
}

func cacheKey(userID uuid.UUID, startDate, endDate time.Time) string {
	return fmt.Sprintf("%s:%d:%d", userID, startDate.Unix(), endDate.Unix())
}

func (c *fakeStatsCache) Get(_ context.Context, userID uuid.UUID, startDate, endDate time.Time) (*entity.ExpenseStats, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[cacheKey(userID, startDate, endDate)], nil
}

func (c *fakeStatsCache) Set(_ context.Context, userID uuid.UUID, startDate, endDate time.Time, stats *entity.ExpenseStats) error {
	if c.setErr != nil {
		return c.setErr
	}
	c.sets++
	c.entries[cacheKey(userID, startDate, endDate)] = stats
	return nil
}

func (c *fakeStatsCache) Invalidate(_ context.Context, _ uuid.UUID) error {
	c.invalidated++
	c.entries = make(map[string]*entity.ExpenseStats)
	return nil
}

func hasViolationFor(err error, field string) bool {
	var verr *domainerror.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	for _, violation := range verr.Violations {
		if violation.Field == field {
			return true
		}
	}
	return false
}
