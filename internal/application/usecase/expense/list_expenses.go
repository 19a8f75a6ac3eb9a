package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

const (
	// DefaultPage is the page used when none is supplied.
	DefaultPage = 1
	// DefaultLimit is the page size used when none is supplied.
	DefaultLimit = 10
	// MaxLimit caps the page size regardless of what the caller asks for.
	MaxLimit = 100
)

// sortFields maps caller-supplied sort keys to repository sort fields.
var sortFields = map[string]adapter.ExpenseSortField{
	"date":        adapter.ExpenseSortByDate,
	"amount":      adapter.ExpenseSortByAmount,
	"description": adapter.ExpenseSortByDescription,
	"createdAt":   adapter.ExpenseSortByCreatedAt,
}

// ListExpensesInput represents the raw list query as received from the caller.
type ListExpensesInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Tags       []string
	Search     string
	SortBy     string
	SortOrder  string
	Page       int
	Limit      int
}

// ListExpensesUseCase handles filtered, paginated expense listing.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists the caller's expenses applying filters, sorting and
// pagination. Out-of-range pagination values fall back to defaults and
// unknown sort keys fall back to date.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*entity.ExpenseListResult, error) {
	page := input.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := input.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	field, ok := sortFields[input.SortBy]
	if !ok {
		field = adapter.ExpenseSortByDate
	}
	descending := !strings.EqualFold(input.SortOrder, "asc")

	filter := adapter.ExpenseFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Tags:       input.Tags,
		Search:     strings.TrimSpace(input.Search),
	}

	result, err := uc.expenseRepo.FindByFilter(ctx, filter,
		adapter.ExpenseSort{Field: field, Descending: descending},
		adapter.ExpensePagination{Page: page, Limit: limit},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return result, nil
}
