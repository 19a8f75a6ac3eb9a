package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
)

// GetStatsInput represents the stats query period. Nil bounds take the
// default period, the start of the current month up to now.
type GetStatsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// GetStatsUseCase aggregates a user's spending per category over a period.
type GetStatsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	statsCache  adapter.StatsCache
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(expenseRepo adapter.ExpenseRepository, statsCache adapter.StatsCache) *GetStatsUseCase {
	return &GetStatsUseCase{
		expenseRepo: expenseRepo,
		statsCache:  statsCache,
	}
}

// Execute computes per-category totals, counts and averages plus the grand
// total for the period. Results are served from cache when a fresh entry for
// the same period exists.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*entity.ExpenseStats, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if input.StartDate != nil {
		start = *input.StartDate
	}
	end := now
	if input.EndDate != nil {
		end = *input.EndDate
	}

	if uc.statsCache != nil {
		cached, err := uc.statsCache.Get(ctx, input.UserID, start, end)
		if err != nil {
			slog.Warn("Failed to read stats cache",
				"userID", input.UserID,
				"error", err,
			)
		} else if cached != nil {
			return cached, nil
		}
	}

	breakdown, err := uc.expenseRepo.GetStats(ctx, input.UserID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	totalSpent := decimal.Zero
	for _, group := range breakdown {
		totalSpent = totalSpent.Add(group.TotalAmount)
	}

	stats := &entity.ExpenseStats{
		TotalSpent:        totalSpent,
		CategoryBreakdown: breakdown,
		StartDate:         start,
		EndDate:           end,
	}

	if uc.statsCache != nil {
		if err := uc.statsCache.Set(ctx, input.UserID, start, end, stats); err != nil {
			slog.Warn("Failed to write stats cache",
				"userID", input.UserID,
				"error", err,
			)
		}
	}

	return stats, nil
}
