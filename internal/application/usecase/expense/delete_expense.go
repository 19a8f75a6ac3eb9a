package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// DeleteExpenseUseCase handles expense deletion.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	statsCache  adapter.StatsCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, statsCache adapter.StatsCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		statsCache:  statsCache,
	}
}

// Execute removes an expense owned by the caller. Deleting an expense that
// does not exist or belongs to another user returns ErrExpenseNotFound.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, expenseID, userID uuid.UUID) error {
	removed, err := uc.expenseRepo.DeleteByIDAndUser(ctx, expenseID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if !removed {
		return domainerror.ErrExpenseNotFound
	}

	invalidateStats(ctx, uc.statsCache, userID)
	return nil
}
