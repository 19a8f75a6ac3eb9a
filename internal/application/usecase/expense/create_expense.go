// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MaxDescriptionLength is the maximum allowed length for expense descriptions.
	MaxDescriptionLength = 200
	// MaxTagLength is the maximum allowed length for a single tag.
	MaxTagLength = 30
	// MaxNotesLength is the maximum allowed length for expense notes.
	MaxNotesLength = 500
	// MaxLocationLength is the maximum allowed length for the location field.
	MaxLocationLength = 100
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Description   string
	CategoryID    uuid.UUID
	Date          *time.Time
	Tags          []string
	Notes         string
	PaymentMethod entity.PaymentMethod
	Location      string
	Receipt       *entity.Receipt
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	statsCache   adapter.StatsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	statsCache adapter.StatsCache,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		statsCache:   statsCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*entity.ExpenseWithCategory, error) {
	if err := validateExpenseFields(input.Amount, input.Description, input.Tags, input.Notes, input.PaymentMethod, input.Location); err != nil {
		return nil, err
	}

	// The category must be active and owned by the caller at write time.
	// It is not re-validated if it is deactivated later.
	category, err := uc.resolveCategory(ctx, input.CategoryID, input.UserID)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	paymentMethod := input.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = entity.PaymentMethodCash
	}

	expense := entity.NewExpense(
		input.UserID,
		input.Amount,
		input.Description,
		category.ID,
		date,
		input.Tags,
		input.Notes,
		paymentMethod,
		input.Location,
	)
	expense.Receipt = input.Receipt

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateStats(ctx, uc.statsCache, input.UserID)

	return &entity.ExpenseWithCategory{
		Expense:  expense,
		Category: category,
	}, nil
}

// resolveCategory loads an active category owned by userID, translating any
// miss into ErrInvalidCategory.
func (uc *CreateExpenseUseCase) resolveCategory(ctx context.Context, categoryID, userID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindActiveByIDAndUser(ctx, categoryID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.ErrInvalidCategory
		}
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	return category, nil
}

// invalidateStats drops the user's cached statistics after a write. Cache
// failures are logged, never propagated.
func invalidateStats(ctx context.Context, cache adapter.StatsCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate stats cache",
			"userID", userID,
			"error", err,
		)
	}
}

func validateExpenseFields(
	amount decimal.Decimal,
	description string,
	tags []string,
	notes string,
	paymentMethod entity.PaymentMethod,
	location string,
) error {
	verr := &domainerror.ValidationError{}
	if !amount.IsPositive() {
		verr.Add("amount", "amount must be a positive number")
	}
	if description == "" || utf8.RuneCountInString(description) > MaxDescriptionLength {
		verr.Add("description", fmt.Sprintf("description must be between 1 and %d characters", MaxDescriptionLength))
	}
	for _, tag := range tags {
		if tag == "" || utf8.RuneCountInString(tag) > MaxTagLength {
			verr.Add("tags", fmt.Sprintf("each tag must be between 1 and %d characters", MaxTagLength))
			break
		}
	}
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		verr.Add("notes", fmt.Sprintf("notes cannot exceed %d characters", MaxNotesLength))
	}
	if paymentMethod != "" && !entity.ValidPaymentMethod(paymentMethod) {
		verr.Add("paymentMethod", "invalid payment method")
	}
	if utf8.RuneCountInString(location) > MaxLocationLength {
		verr.Add("location", fmt.Sprintf("location cannot exceed %d characters", MaxLocationLength))
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}
