package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/usecase/category"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
	updateUseCase *category.UpdateCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /api/categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	categories, err := c.listUseCase.Execute(ctx.Request.Context(), caller.UserID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{
		Success:    true,
		Count:      len(categories),
		Categories: dto.ToCategoryResponses(categories),
	})
}

// Create handles POST /api/categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:      caller.UserID,
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SingleCategoryResponse{
		Success:  true,
		Message:  "Category created successfully",
		Category: dto.ToCategoryResponse(created),
	})
}

// Update handles PUT /api/categories/:id requests.
func (c *CategoryController) Update(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Category not found", "CATEGORY_NOT_FOUND"))
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), category.UpdateCategoryInput{
		CategoryID:  categoryID,
		UserID:      caller.UserID,
		Name:        req.Name,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SingleCategoryResponse{
		Success:  true,
		Message:  "Category updated successfully",
		Category: dto.ToCategoryResponse(updated),
	})
}

// Delete handles DELETE /api/categories/:id requests.
func (c *CategoryController) Delete(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Category not found", "CATEGORY_NOT_FOUND"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), categoryID, caller.UserID); err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Category deleted successfully",
	})
}
