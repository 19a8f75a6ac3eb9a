// Package adapter defines interfaces for external dependencies following hexagonal architecture.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// StatsCache caches computed expense statistics per user and period.
// Implementations are a pure optimization: callers log cache errors and fall
// through to the repository, they never fail the request.
type StatsCache interface {
	// Get returns the cached stats for the period, or (nil, nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time) (*entity.ExpenseStats, error)

	// Set stores the stats for the period.
	Set(ctx context.Context, userID uuid.UUID, startDate, endDate time.Time, stats *entity.ExpenseStats) error

	// Invalidate drops all cached periods for the user. Called after every
	// expense write.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
