package persistence

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/domain/entity"
	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.CategoryModel{},
		&model.ExpenseModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	user := entity.NewUser("Test User", email, "hashed-password")
	if err := db.Create(model.UserFromEntity(user)).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string) *entity.Category {
	t.Helper()
	category := entity.NewCategory(userID, name, "fas fa-tag", "#3B82F6", "")
	if err := db.Create(model.CategoryFromEntity(category)).Error; err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

func seedExpense(t *testing.T, db *gorm.DB, userID, categoryID uuid.UUID, amount string, description string, date time.Time) *entity.Expense {
	t.Helper()
	expense := entity.NewExpense(
		userID,
		decimal.RequireFromString(amount),
		description,
		categoryID,
		date,
		nil,
		"",
		entity.PaymentMethodCash,
		"",
	)
	if err := db.Create(model.ExpenseFromEntity(expense)).Error; err != nil {
		t.Fatalf("failed to seed expense %q: %v", description, err)
	}
	return expense
}
