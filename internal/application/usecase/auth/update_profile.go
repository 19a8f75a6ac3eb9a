// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
	"github.com/expense-tracker/backend/internal/domain/valueobject"
)

// PreferencesPatch represents a partial preferences update. Omitted fields
// are left unchanged.
type PreferencesPatch struct {
	Currency valueobject.Optional[string]
	Theme    valueobject.Optional[string]
}

// UpdateProfileInput represents the input for a profile update.
type UpdateProfileInput struct {
	UserID      uuid.UUID
	Name        valueobject.Optional[string]
	Avatar      valueobject.Optional[string]
	Preferences *PreferencesPatch
}

// UpdateProfileUseCase handles profile update logic.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the patch field-by-field and returns the updated user.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if name, ok := input.Name.Value(); ok {
		name = strings.TrimSpace(name)
		if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
			verr := &domainerror.ValidationError{}
			verr.Add("name", fmt.Sprintf("name must be between %d and %d characters", MinNameLength, MaxNameLength))
			return nil, verr
		}
		user.Name = name
	}

	if input.Avatar.Present() {
		if avatar, ok := input.Avatar.Value(); ok {
			user.Avatar = avatar
		} else {
			user.Avatar = ""
		}
	}

	if input.Preferences != nil {
		if currency, ok := input.Preferences.Currency.Value(); ok {
			user.Preferences.Currency = currency
		}
		if theme, ok := input.Preferences.Theme.Value(); ok {
			if theme != string(entity.ThemeLight) && theme != string(entity.ThemeDark) {
				verr := &domainerror.ValidationError{}
				verr.Add("preferences.theme", "theme must be either 'light' or 'dark'")
				return nil, verr
			}
			user.Preferences.Theme = entity.Theme(theme)
		}
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
