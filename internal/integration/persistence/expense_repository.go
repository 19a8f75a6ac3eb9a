package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// sortColumns maps repository sort fields to database columns. Amount sorts
// on the cents column, which preserves monetary order.
var sortColumns = map[adapter.ExpenseSortField]string{
	adapter.ExpenseSortByDate:        "date",
	adapter.ExpenseSortByAmount:      "amount_cents",
	adapter.ExpenseSortByDescription: "description",
	adapter.ExpenseSortByCreatedAt:   "created_at",
}

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves an expense by id scoped to its owner.
func (r *expenseRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter, sorted and paginated,
// with their categories preloaded.
func (r *expenseRepository) FindByFilter(
	ctx context.Context,
	filter adapter.ExpenseFilter,
	sort adapter.ExpenseSort,
	pagination adapter.ExpensePagination,
) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})
	query = applyExpenseFilter(query, filter)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	column, ok := sortColumns[sort.Field]
	if !ok {
		column = "date"
	}
	direction := "ASC"
	if sort.Descending {
		direction = "DESC"
	}

	var expenseModels []model.ExpenseModel
	result := query.
		Preload("Category").
		Order(fmt.Sprintf("%s %s, id ASC", column, direction)).
		Offset((pagination.Page - 1) * pagination.Limit).
		Limit(pagination.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.ExpenseWithCategory, len(expenseModels))
	for i, em := range expenseModels {
		var category *entity.Category
		if em.Category != nil {
			category = em.Category.ToEntity()
		}
		expenses[i] = &entity.ExpenseWithCategory{
			Expense:  em.ToEntity(),
			Category: category,
		}
	}

	totalPages := int((total + int64(pagination.Limit) - 1) / int64(pagination.Limit))
	if totalPages == 0 {
		totalPages = 1
	}

	return &entity.ExpenseListResult{
		Expenses:      expenses,
		TotalExpenses: total,
		Page:          pagination.Page,
		Limit:         pagination.Limit,
		TotalPages:    totalPages,
	}, nil
}

// applyExpenseFilter narrows a query to the rows the filter describes. Date
// bounds are inclusive. Tags match when any requested tag is present. Search
// is a case-insensitive substring match over description, notes, location
// and tags.
func applyExpenseFilter(query *gorm.DB, filter adapter.ExpenseFilter) *gorm.DB {
	query = query.Where("user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if len(filter.Tags) > 0 {
		// Tags are stored as a JSON array, so a quoted-element LIKE
		// matches whole tags only.
		tagQuery := query.Session(&gorm.Session{NewDB: true})
		conditions := tagQuery.Where(`tags LIKE ? ESCAPE '\'`, tagPattern(filter.Tags[0]))
		for _, tag := range filter.Tags[1:] {
			conditions = conditions.Or(`tags LIKE ? ESCAPE '\'`, tagPattern(tag))
		}
		query = query.Where(conditions)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(description) LIKE ? OR LOWER(notes) LIKE ? OR LOWER(location) LIKE ? OR LOWER(tags) LIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return query
}

// tagPattern builds a LIKE pattern for one whole element of the JSON-encoded
// tags column. The tag is JSON-encoded the same way it is stored, and LIKE
// metacharacters are escaped so tags containing % or _ match literally.
func tagPattern(tag string) string {
	encoded, _ := json.Marshal(tag)
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(string(encoded))
	return "%" + escaped + "%"
}

// statsRow is the raw per-category aggregation row.
type statsRow struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryIcon  string
	CategoryColor string
	TotalCents    int64
	Count         int64
}

// GetStats aggregates a user's spending per category over the inclusive
// period, ordered by total spent descending. Totals are summed in cents so
// they are exact.
func (r *expenseRepository) GetStats(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]entity.CategoryBreakdown, error) {
	var rows []statsRow
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("expenses.category_id AS category_id, " +
			"categories.name AS category_name, " +
			"categories.icon AS category_icon, " +
			"categories.color AS category_color, " +
			"SUM(expenses.amount_cents) AS total_cents, " +
			"COUNT(expenses.id) AS count").
		Joins("JOIN categories ON categories.id = expenses.category_id").
		Where("expenses.user_id = ? AND expenses.date >= ? AND expenses.date <= ?", userID, start, end).
		Group("expenses.category_id, categories.name, categories.icon, categories.color").
		Order("total_cents DESC").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	breakdown := make([]entity.CategoryBreakdown, len(rows))
	for i, row := range rows {
		total := decimal.New(row.TotalCents, -2)
		breakdown[i] = entity.CategoryBreakdown{
			CategoryID:    row.CategoryID,
			CategoryName:  row.CategoryName,
			CategoryIcon:  row.CategoryIcon,
			CategoryColor: row.CategoryColor,
			TotalAmount:   total,
			Count:         row.Count,
			AvgAmount:     total.Div(decimal.NewFromInt(row.Count)).Round(2),
		}
	}
	return breakdown, nil
}

// Update persists changes to an existing expense.
func (r *expenseRepository) Update(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	// Save skips zero-valued fields on updates of cleared columns, so write
	// the full column set explicitly.
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expenseModel.ID).
		Select("*").
		Updates(expenseModel)
	return result.Error
}

// DeleteByIDAndUser removes an expense scoped to its owner, reporting
// whether a row was deleted.
func (r *expenseRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ExpenseModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
