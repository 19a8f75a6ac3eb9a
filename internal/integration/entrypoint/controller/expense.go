package controller

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/expense"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	statsUseCase  *expense.GetStatsUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	statsUseCase *expense.GetStatsUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		statsUseCase:  statsUseCase,
	}
}

// Create handles POST /api/expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or inactive category", "INVALID_CATEGORY"))
		return
	}

	input := expense.CreateExpenseInput{
		UserID:        caller.UserID,
		Amount:        req.Amount,
		Description:   req.Description,
		CategoryID:    categoryID,
		Date:          req.Date,
		Tags:          req.Tags,
		Notes:         req.Notes,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Location:      req.Location,
	}
	if req.Receipt != nil {
		input.Receipt = &entity.Receipt{
			URL:      req.Receipt.URL,
			Filename: req.Receipt.Filename,
		}
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SingleExpenseResponse{
		Success: true,
		Message: "Expense created successfully",
		Expense: dto.ToExpenseResponse(created),
	})
}

// Get handles GET /api/expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Expense not found", "EXPENSE_NOT_FOUND"))
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), expenseID, caller.UserID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SingleExpenseResponse{
		Success: true,
		Expense: dto.ToExpenseResponse(found),
	})
}

// List handles GET /api/expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	input := expense.ListExpensesInput{
		UserID:    caller.UserID,
		Search:    ctx.Query("search"),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
		Page:      intQuery(ctx, "page"),
		Limit:     intQuery(ctx, "limit"),
	}

	if raw := ctx.Query("category"); raw != "" {
		categoryID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid category filter", "VALIDATION_ERROR"))
			return
		}
		input.CategoryID = &categoryID
	}

	startDate, err := dateQuery(ctx, "startDate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "VALIDATION_ERROR"))
		return
	}
	input.StartDate = startDate

	endDate, err := dateQuery(ctx, "endDate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "VALIDATION_ERROR"))
		return
	}
	input.EndDate = endDate

	if raw := ctx.Query("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}

	result, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	expenses := make([]dto.ExpenseResponse, len(result.Expenses))
	for i, ewc := range result.Expenses {
		expenses[i] = dto.ToExpenseResponse(ewc)
	}

	ctx.JSON(http.StatusOK, dto.ExpenseListResponse{
		Success:  true,
		Expenses: expenses,
		Pagination: dto.PaginationResponse{
			CurrentPage:   result.Page,
			TotalPages:    result.TotalPages,
			TotalExpenses: result.TotalExpenses,
			HasNext:       result.Page < result.TotalPages,
			HasPrev:       result.Page > 1,
		},
	})
}

// Update handles PUT /api/expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Expense not found", "EXPENSE_NOT_FOUND"))
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:     expenseID,
		UserID:        caller.UserID,
		Amount:        req.Amount,
		Description:   req.Description,
		Date:          req.Date,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
		Location:      req.Location,
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or inactive category", "INVALID_CATEGORY"))
			return
		}
		input.CategoryID = &categoryID
	}
	if req.Tags != nil {
		input.HasTags = true
		input.Tags = *req.Tags
	}
	if req.Receipt.Present() {
		if req.Receipt.IsNull() {
			input.Receipt = valueobject.Null[entity.Receipt]()
		} else {
			receipt, _ := req.Receipt.Value()
			input.Receipt = valueobject.Some(entity.Receipt{
				URL:      receipt.URL,
				Filename: receipt.Filename,
			})
		}
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SingleExpenseResponse{
		Success: true,
		Message: "Expense updated successfully",
		Expense: dto.ToExpenseResponse(updated),
	})
}

// Delete handles DELETE /api/expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Expense not found", "EXPENSE_NOT_FOUND"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), expenseID, caller.UserID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Expense deleted successfully",
	})
}

// GetStats handles GET /api/expenses/stats requests.
func (c *ExpenseController) GetStats(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	startDate, err := dateQuery(ctx, "startDate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "VALIDATION_ERROR"))
		return
	}
	endDate, err := dateQuery(ctx, "endDate")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), "VALIDATION_ERROR"))
		return
	}

	stats, err := c.statsUseCase.Execute(ctx.Request.Context(), expense.GetStatsInput{
		UserID:    caller.UserID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// intQuery reads a non-negative integer query parameter, zero when absent or
// malformed. Defaults are applied downstream.
func intQuery(ctx *gin.Context, name string) int {
	raw := ctx.Query(name)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}
	return value
}

// dateQuery reads a date query parameter accepting RFC 3339 timestamps and
// plain yyyy-mm-dd dates.
func dateQuery(ctx *gin.Context, name string) (*time.Time, error) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, nil
	}
	if value, err := time.Parse(time.RFC3339, raw); err == nil {
		value = value.UTC()
		return &value, nil
	}
	if value, err := time.Parse("2006-01-02", raw); err == nil {
		return &value, nil
	}
	return nil, fmt.Errorf("invalid %s, expected an RFC 3339 timestamp or yyyy-mm-dd", name)
}
