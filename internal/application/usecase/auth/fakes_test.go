package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return domainerror.ErrEmailAlreadyExists
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return domainerror.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	if errors.Is(err, domainerror.ErrUserNotFound) {
		return false, nil
	}
	return err == nil, err
}

type fakeCategoryRepo struct {
	created   []*entity.Category
	createErr error
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	f.created = append(f.created, category)
	return nil
}

func (f *fakeCategoryRepo) CreateMany(ctx context.Context, categories []*entity.Category) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, categories...)
	return nil
}

func (f *fakeCategoryRepo) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindActiveByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	return nil, domainerror.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) ExistsActiveByName(ctx context.Context, userID uuid.UUID, name string, excludeID uuid.UUID) (bool, error) {
	return false, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	return nil
}

type fakePasswordService struct{}

func (f *fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (f *fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

type fakeTokenService struct{}

func (f *fakeTokenService) IssueToken(userID uuid.UUID) (string, error) {
	return "token-for-" + userID.String(), nil
}

func (f *fakeTokenService) VerifyToken(token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func hasViolationFor(err error, field string) bool {
	var verr *domainerror.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	for _, violation := range verr.Violations {
		if violation.Field == field {
			return true
		}
	}
	return false
}

func containsName(categories []*entity.Category, name string) bool {
	for _, category := range categories {
		if strings.EqualFold(category.Name, name) {
			return true
		}
	}
	return false
}
