package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

func TestCategoryRepositorySeedDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")

	if err := repo.CreateMany(ctx, entity.DefaultCategories(user.ID)); err != nil {
		t.Fatalf("CreateMany() error = %v", err)
	}

	categories, err := repo.FindActiveByUser(ctx, user.ID)
	if err != nil {
		t.Fatalf("FindActiveByUser() error = %v", err)
	}
	if len(categories) != 10 {
		t.Fatalf("len(categories) = %d, want 10", len(categories))
	}
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name > categories[i].Name {
			t.Errorf("categories not sorted by name: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
	for _, category := range categories {
		if !category.IsDefault {
			t.Errorf("category %q should be marked default", category.Name)
		}
	}
}

func TestCategoryRepositoryUniqueNamePerUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@example.com")
	bob := seedUser(t, db, "bob@example.com")

	if err := repo.Create(ctx, entity.NewCategory(alice.ID, "Groceries", "fas fa-tag", "#3B82F6", "")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	err := repo.Create(ctx, entity.NewCategory(alice.ID, "Groceries", "fas fa-tag", "#3B82F6", ""))
	if !errors.Is(err, domainerror.ErrCategoryNameExists) {
		t.Errorf("Create() duplicate error = %v, want ErrCategoryNameExists", err)
	}

	// Another user may reuse the name.
	if err := repo.Create(ctx, entity.NewCategory(bob.ID, "Groceries", "fas fa-tag", "#3B82F6", "")); err != nil {
		t.Errorf("Create() for other user error = %v", err)
	}
}

func TestCategoryRepositoryNameFreedAfterDeactivation(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")

	category := entity.NewCategory(user.ID, "Groceries", "fas fa-tag", "#3B82F6", "")
	if err := repo.Create(ctx, category); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	category.IsActive = false
	if err := repo.Update(ctx, category); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := repo.Create(ctx, entity.NewCategory(user.ID, "Groceries", "fas fa-tag", "#3B82F6", "")); err != nil {
		t.Errorf("Create() after deactivation error = %v", err)
	}
}

func TestCategoryRepositoryExistsActiveByName(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")
	category := seedCategory(t, db, user.ID, "Groceries")

	tests := []struct {
		name      string
		lookup    string
		excludeID uuid.UUID
		want      bool
	}{
		{"exact match", "Groceries", uuid.Nil, true},
		{"case insensitive match", "gRoCeRiEs", uuid.Nil, true},
		{"no match", "Travel", uuid.Nil, false},
		{"excluded self", "Groceries", category.ID, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.ExistsActiveByName(ctx, user.ID, tt.lookup, tt.excludeID)
			if err != nil {
				t.Fatalf("ExistsActiveByName() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ExistsActiveByName(%q) = %v, want %v", tt.lookup, got, tt.want)
			}
		})
	}
}

func TestCategoryRepositoryActiveScoping(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "alice@example.com")
	other := seedUser(t, db, "bob@example.com")

	category := seedCategory(t, db, user.ID, "Groceries")

	if _, err := repo.FindActiveByIDAndUser(ctx, category.ID, other.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("FindActiveByIDAndUser() for other user error = %v, want ErrCategoryNotFound", err)
	}

	category.IsActive = false
	if err := repo.Update(ctx, category); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if _, err := repo.FindActiveByIDAndUser(ctx, category.ID, user.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
		t.Errorf("FindActiveByIDAndUser() for inactive category error = %v, want ErrCategoryNotFound", err)
	}

	// The unscoped lookup still finds it for historical expenses.
	got, err := repo.FindByIDAndUser(ctx, category.ID, user.ID)
	if err != nil {
		t.Fatalf("FindByIDAndUser() error = %v", err)
	}
	if got.IsActive {
		t.Error("IsActive = true after deactivation")
	}
}
