// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an expense was paid.
type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodDebitCard     PaymentMethod = "debit_card"
	PaymentMethodBankTransfer  PaymentMethod = "bank_transfer"
	PaymentMethodDigitalWallet PaymentMethod = "digital_wallet"
	PaymentMethodOther         PaymentMethod = "other"
)

// ValidPaymentMethod reports whether the given payment method is one of the
// supported values.
func ValidPaymentMethod(method PaymentMethod) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodDigitalWallet, PaymentMethodOther:
		return true
	}
	return false
}

// Receipt holds an optional stored receipt reference for an expense.
type Receipt struct {
	URL      string
	Filename string
}

// Expense represents a single expense record owned by one user.
// Amount is rounded to 2 decimal places (half away from zero) at write time
// and persisted as integer cents, so aggregate sums are exact.
type Expense struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Description   string
	CategoryID    uuid.UUID
	Date          time.Time
	Tags          []string
	Notes         string
	PaymentMethod PaymentMethod
	Location      string
	Receipt       *Receipt
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new Expense entity. The amount is rounded to 2
// decimal places here; date defaulting is applied by the use case layer.
func NewExpense(
	userID uuid.UUID,
	amount decimal.Decimal,
	description string,
	categoryID uuid.UUID,
	date time.Time,
	tags []string,
	notes string,
	paymentMethod PaymentMethod,
	location string,
) *Expense {
	now := time.Now().UTC()
	if tags == nil {
		tags = []string{}
	}
	return &Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        amount.Round(2),
		Description:   description,
		CategoryID:    categoryID,
		Date:          date,
		Tags:          tags,
		Notes:         notes,
		PaymentMethod: paymentMethod,
		Location:      location,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ExpenseWithCategory represents an expense joined with the display fields of
// its category.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}

// ExpenseListResult represents one page of a filtered expense listing.
type ExpenseListResult struct {
	Expenses      []*ExpenseWithCategory
	TotalExpenses int64
	Page          int
	Limit         int
	TotalPages    int
}

// CategoryBreakdown represents the aggregate of one category over a period.
type CategoryBreakdown struct {
	CategoryID    uuid.UUID
	CategoryName  string
	CategoryIcon  string
	CategoryColor string
	TotalAmount   decimal.Decimal
	Count         int64
	AvgAmount     decimal.Decimal
}

// ExpenseStats represents per-category spending statistics over a period,
// sorted by total amount descending.
type ExpenseStats struct {
	TotalSpent        decimal.Decimal
	CategoryBreakdown []CategoryBreakdown
	StartDate         time.Time
	EndDate           time.Time
}
