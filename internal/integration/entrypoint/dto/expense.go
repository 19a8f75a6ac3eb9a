package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// ReceiptRequest represents an attached receipt reference.
type ReceiptRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CategoryID    string          `json:"category"`
	Date          *time.Time      `json:"date"`
	Tags          []string        `json:"tags"`
	Notes         string          `json:"notes"`
	PaymentMethod string          `json:"paymentMethod"`
	Location      string          `json:"location"`
	Receipt       *ReceiptRequest `json:"receipt"`
}

// UpdateExpenseRequest represents a partial expense update. Omitted fields
// keep their stored values.
type UpdateExpenseRequest struct {
	Amount        *decimal.Decimal                     `json:"amount"`
	Description   valueobject.Optional[string]         `json:"description"`
	CategoryID    *string                              `json:"category"`
	Date          *time.Time                           `json:"date"`
	Tags          *[]string                            `json:"tags"`
	Notes         valueobject.Optional[string]         `json:"notes"`
	PaymentMethod valueobject.Optional[string]         `json:"paymentMethod"`
	Location      valueobject.Optional[string]         `json:"location"`
	Receipt       valueobject.Optional[ReceiptRequest] `json:"receipt"`
}

// ReceiptResponse represents an attached receipt in API responses.
type ReceiptResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// ExpenseCategoryResponse is the embedded category summary on an expense.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID            string                   `json:"id"`
	Amount        decimal.Decimal          `json:"amount"`
	Description   string                   `json:"description"`
	Category      *ExpenseCategoryResponse `json:"category"`
	Date          time.Time                `json:"date"`
	Tags          []string                 `json:"tags"`
	Notes         string                   `json:"notes,omitempty"`
	PaymentMethod string                   `json:"paymentMethod"`
	Location      string                   `json:"location,omitempty"`
	Receipt       *ReceiptResponse         `json:"receipt,omitempty"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// PaginationResponse describes the page window of a listing.
type PaginationResponse struct {
	CurrentPage   int   `json:"currentPage"`
	TotalPages    int   `json:"totalPages"`
	TotalExpenses int64 `json:"totalExpenses"`
	HasNext       bool  `json:"hasNext"`
	HasPrev       bool  `json:"hasPrev"`
}

// ExpenseListResponse represents the response for expense listing.
type ExpenseListResponse struct {
	Success    bool               `json:"success"`
	Expenses   []ExpenseResponse  `json:"expenses"`
	Pagination PaginationResponse `json:"pagination"`
}

// SingleExpenseResponse represents the response for single-expense
// endpoints.
type SingleExpenseResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Expense ExpenseResponse `json:"expense"`
}

// CategoryBreakdownResponse is one aggregation group in the stats response.
type CategoryBreakdownResponse struct {
	CategoryID    string          `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	CategoryIcon  string          `json:"categoryIcon"`
	CategoryColor string          `json:"categoryColor"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Count         int64           `json:"count"`
	AvgAmount     decimal.Decimal `json:"avgAmount"`
}

// DateRangeResponse is the period the stats cover.
type DateRangeResponse struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// StatsResponse represents the response for expense statistics.
type StatsResponse struct {
	Success bool      `json:"success"`
	Stats   StatsBody `json:"stats"`
}

// StatsBody is the stats payload.
type StatsBody struct {
	TotalSpent        decimal.Decimal             `json:"totalSpent"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	DateRange         DateRangeResponse           `json:"dateRange"`
}

// ToExpenseResponse converts an expense with its category to an
// ExpenseResponse.
func ToExpenseResponse(ewc *entity.ExpenseWithCategory) ExpenseResponse {
	expense := ewc.Expense

	var category *ExpenseCategoryResponse
	if ewc.Category != nil {
		category = &ExpenseCategoryResponse{
			ID:    ewc.Category.ID.String(),
			Name:  ewc.Category.Name,
			Icon:  ewc.Category.Icon,
			Color: ewc.Category.Color,
		}
	}

	var receipt *ReceiptResponse
	if expense.Receipt != nil {
		receipt = &ReceiptResponse{
			URL:      expense.Receipt.URL,
			Filename: expense.Receipt.Filename,
		}
	}

	tags := expense.Tags
	if tags == nil {
		tags = []string{}
	}

	return ExpenseResponse{
		ID:            expense.ID.String(),
		Amount:        expense.Amount,
		Description:   expense.Description,
		Category:      category,
		Date:          expense.Date,
		Tags:          tags,
		Notes:         expense.Notes,
		PaymentMethod: string(expense.PaymentMethod),
		Location:      expense.Location,
		Receipt:       receipt,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
}

// ToStatsResponse converts domain stats to the API shape.
func ToStatsResponse(stats *entity.ExpenseStats) StatsResponse {
	breakdown := make([]CategoryBreakdownResponse, len(stats.CategoryBreakdown))
	for i, group := range stats.CategoryBreakdown {
		breakdown[i] = CategoryBreakdownResponse{
			CategoryID:    group.CategoryID.String(),
			CategoryName:  group.CategoryName,
			CategoryIcon:  group.CategoryIcon,
			CategoryColor: group.CategoryColor,
			TotalAmount:   group.TotalAmount,
			Count:         group.Count,
			AvgAmount:     group.AvgAmount,
		}
	}
	return StatsResponse{
		Success: true,
		Stats: StatsBody{
			TotalSpent:        stats.TotalSpent,
			CategoryBreakdown: breakdown,
			DateRange: DateRangeResponse{
				StartDate: stats.StartDate,
				EndDate:   stats.EndDate,
			},
		},
	}
}
