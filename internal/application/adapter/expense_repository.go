// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// ExpenseSortField identifies a whitelisted sort column for expense listings.
type ExpenseSortField string

const (
	ExpenseSortByDate        ExpenseSortField = "date"
	ExpenseSortByAmount      ExpenseSortField = "amount"
	ExpenseSortByDescription ExpenseSortField = "description"
	ExpenseSortByCreatedAt   ExpenseSortField = "createdAt"
)

// ExpenseFilter describes the predicate for an expense listing. UserID is
// mandatory: every query is scoped to the caller.
type ExpenseFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Tags       []string
	Search     string
}

// ExpenseSort describes the ordering of an expense listing. Regardless of
// the requested field, listings are tiebroken by id so pagination is stable
// when the primary sort key has duplicates.
type ExpenseSort struct {
	Field      ExpenseSortField
	Descending bool
}

// ExpensePagination describes the requested page of an expense listing.
type ExpensePagination struct {
	Page  int
	Limit int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByIDAndUser retrieves an expense scoped to the owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves one page of expenses matching the filter,
	// each joined with its category.
	FindByFilter(ctx context.Context, filter ExpenseFilter, sort ExpenseSort, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// GetStats aggregates expenses per category over [startDate, endDate]
	// (inclusive), sorted by total amount descending. Sums are accumulated
	// in integer cents.
	GetStats(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) ([]entity.CategoryBreakdown, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// DeleteByIDAndUser hard-deletes an expense scoped to the owner,
	// reporting whether a row was removed.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) (bool, error)
}
