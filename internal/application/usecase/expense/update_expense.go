package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// UpdateExpenseInput represents a partial expense update. Absent fields keep
// their stored values.
type UpdateExpenseInput struct {
	ExpenseID     uuid.UUID
	UserID        uuid.UUID
	Amount        *decimal.Decimal
	Description   valueobject.Optional[string]
	CategoryID    *uuid.UUID
	Date          *time.Time
	Tags          []string
	HasTags       bool
	Notes         valueobject.Optional[string]
	PaymentMethod valueobject.Optional[string]
	Location      valueobject.Optional[string]
	Receipt       valueobject.Optional[entity.Receipt]
}

// UpdateExpenseUseCase handles partial expense updates.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	statsCache   adapter.StatsCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	statsCache adapter.StatsCache,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

// Execute applies the supplied fields to an expense owned by the caller.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*entity.ExpenseWithCategory, error) {
	expense, err := uc.expenseRepo.FindByIDAndUser(ctx, input.ExpenseID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	if input.Amount != nil {
		expense.Amount = input.Amount.Round(2)
	}
	if desc, ok := input.Description.Value(); ok {
		expense.Description = desc
	}
	if input.CategoryID != nil {
		expense.CategoryID = *input.CategoryID
	}
	if input.Date != nil {
		expense.Date = *input.Date
	}
	if input.HasTags {
		tags := input.Tags
		if tags == nil {
			tags = []string{}
		}
		expense.Tags = tags
	}
	if input.Notes.Present() {
		notes, _ := input.Notes.Value()
		expense.Notes = notes
	}
	if pm, ok := input.PaymentMethod.Value(); ok {
		expense.PaymentMethod = entity.PaymentMethod(pm)
	}
	if input.Location.Present() {
		location, _ := input.Location.Value()
		expense.Location = location
	}
	if input.Receipt.Present() {
		if input.Receipt.IsNull() {
			expense.Receipt = nil
		} else {
			receipt, _ := input.Receipt.Value()
			expense.Receipt = &receipt
		}
	}

	if err := validateExpenseFields(
		expense.Amount,
		expense.Description,
		expense.Tags,
		expense.Notes,
		expense.PaymentMethod,
		expense.Location,
	); err != nil {
		return nil, err
	}

	// Re-validate the category whenever it changes.
	var category *entity.Category
	if input.CategoryID != nil {
		category, err = uc.resolveCategory(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			return nil, err
		}
	} else {
		category, err = uc.categoryRepo.FindByIDAndUser(ctx, expense.CategoryID, input.UserID)
		if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	expense.UpdatedAt = time.Now().UTC()
	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateStats(ctx, uc.statsCache, input.UserID)

	return &entity.ExpenseWithCategory{
		Expense:  expense,
		Category: category,
	}, nil
}

func (uc *UpdateExpenseUseCase) resolveCategory(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindActiveByIDAndUser(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}
