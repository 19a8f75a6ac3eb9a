package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// GetExpenseUseCase handles fetching a single expense.
type GetExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository, categoryRepo adapter.CategoryRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute fetches an expense owned by userID along with its category.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, expenseID, userID uuid.UUID) (*entity.ExpenseWithCategory, error) {
	expense, err := uc.expenseRepo.FindByIDAndUser(ctx, expenseID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	// The category may have been deactivated since the expense was recorded.
	// The lookup is by id only so historical rows still render.
	category, err := uc.categoryRepo.FindByIDAndUser(ctx, expense.CategoryID, userID)
	if err != nil && !errors.Is(err, domainerror.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &entity.ExpenseWithCategory{
		Expense:  expense,
		Category: category,
	}, nil
}
