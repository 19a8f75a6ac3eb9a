// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/expense-tracker/backend/internal/application/usecase/auth"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/expense-tracker/backend/internal/integration/entrypoint/middleware"
)

// AuthController handles authentication and profile endpoints.
type AuthController struct {
	registerUseCase      *auth.RegisterUserUseCase
	loginUseCase         *auth.LoginUserUseCase
	getProfileUseCase    *auth.GetProfileUseCase
	updateProfileUseCase *auth.UpdateProfileUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUseCase *auth.RegisterUserUseCase,
	loginUseCase *auth.LoginUserUseCase,
	getProfileUseCase *auth.GetProfileUseCase,
	updateProfileUseCase *auth.UpdateProfileUseCase,
) *AuthController {
	return &AuthController{
		registerUseCase:      registerUseCase,
		loginUseCase:         loginUseCase,
		getProfileUseCase:    getProfileUseCase,
		updateProfileUseCase: updateProfileUseCase,
	}
}

// Register handles POST /api/auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   output.Token,
		User:    dto.ToUserResponse(output.User),
	})
}

// Login handles POST /api/auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}
	if req.Email == "" || req.Password == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide email and password", "VALIDATION_ERROR"))
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   output.Token,
		User:    dto.ToUserResponse(output.User),
	})
}

// GetProfile handles GET /api/auth/profile requests.
func (c *AuthController) GetProfile(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	user, err := c.getProfileUseCase.Execute(ctx.Request.Context(), caller.UserID)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		User:    dto.ToUserResponse(user),
	})
}

// UpdateProfile handles PUT /api/auth/profile requests.
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	caller, ok := middleware.CallerFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", string(domainerror.ErrCodeInvalidToken)))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body", "VALIDATION_ERROR"))
		return
	}

	input := auth.UpdateProfileInput{
		UserID: caller.UserID,
		Name:   req.Name,
		Avatar: req.Avatar,
	}
	if req.Preferences != nil {
		input.Preferences = &auth.PreferencesPatch{
			Currency: req.Preferences.Currency,
			Theme:    req.Preferences.Theme,
		}
	}

	user, err := c.updateProfileUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{
		Success: true,
		Message: "Profile updated successfully",
		User:    dto.ToUserResponse(user),
	})
}

// handleDomainError maps domain errors to HTTP responses. Anything without a
// mapping is a 500 and gets logged.
func handleDomainError(ctx *gin.Context, err error) {
	var verr *domainerror.ValidationError
	if errors.As(err, &verr) {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(verr))
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		switch authErr.Code {
		case domainerror.ErrCodeEmailExists, domainerror.ErrCodeInvalidCredentials:
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.NewErrorResponse(authErr.Message, string(authErr.Code)))
		return
	}

	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", "USER_NOT_FOUND"))
	case errors.Is(err, domainerror.ErrCategoryNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Category not found", "CATEGORY_NOT_FOUND"))
	case errors.Is(err, domainerror.ErrCategoryNameExists):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Category with this name already exists", "CATEGORY_NAME_EXISTS"))
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("Expense not found", "EXPENSE_NOT_FOUND"))
	case errors.Is(err, domainerror.ErrInvalidCategory):
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid or inactive category", "INVALID_CATEGORY"))
	default:
		slog.Error("Unhandled error",
			"path", ctx.FullPath(),
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", "INTERNAL_ERROR"))
	}
}
