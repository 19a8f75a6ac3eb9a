// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

const (
	// MinNameLength is the minimum allowed length for user names.
	MinNameLength = 2
	// MaxNameLength is the maximum allowed length for user names.
	MaxNameLength = 50
	// MinPasswordLength is the minimum allowed password length.
	MinPasswordLength = 6
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// NormalizeEmail lowercases and trims an email address so lookups and the
// unique index agree on one canonical form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserOutput represents the output of user registration.
type RegisterUserOutput struct {
	Token string
	User  *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	categoryRepo    adapter.CategoryRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	categoryRepo adapter.CategoryRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)

	if err := validateRegistration(name, email, input.Password); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"user with this email already exists",
			domainerror.ErrEmailAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(name, email, passwordHash)

	// The unique index is the backstop for concurrent registrations with
	// the same email.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerror.ErrEmailAlreadyExists) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeEmailExists,
				"user with this email already exists",
				domainerror.ErrEmailAlreadyExists,
			)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.seedDefaultCategories(ctx, user)

	token, err := uc.tokenService.IssueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &RegisterUserOutput{
		Token: token,
		User:  user,
	}, nil
}

// seedDefaultCategories creates the default category set for a new user.
// Seeding is best-effort: a failure is logged and never fails or rolls back
// the registration.
func (uc *RegisterUserUseCase) seedDefaultCategories(ctx context.Context, user *entity.User) {
	if err := uc.categoryRepo.CreateMany(ctx, entity.DefaultCategories(user.ID)); err != nil {
		slog.Warn("Failed to seed default categories",
			"userID", user.ID,
			"error", err,
		)
	}
}

func validateRegistration(name, email, password string) error {
	verr := &domainerror.ValidationError{}
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		verr.Add("name", fmt.Sprintf("name must be between %d and %d characters", MinNameLength, MaxNameLength))
	}
	if !emailRegex.MatchString(email) {
		verr.Add("email", "please provide a valid email")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		verr.Add("password", fmt.Sprintf("password must be at least %d characters long", MinPasswordLength))
	}
	if verr.HasViolations() {
		return verr
	}
	return nil
}
