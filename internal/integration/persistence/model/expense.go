package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/expense-tracker/backend/internal/domain/entity"
)

// centsFactor converts between decimal amounts and their integer-cent
// representation.
var centsFactor = decimal.NewFromInt(100)

// ExpenseModel represents the expenses table in the database. Amounts are
// stored as integer cents so sums stay exact on every dialect.
type ExpenseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;index:idx_expenses_user_date"`
	AmountCents     int64     `gorm:"not null"`
	Description     string    `gorm:"type:varchar(200);not null"`
	CategoryID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Date            time.Time `gorm:"not null;index:idx_expenses_user_date"`
	Tags            []string  `gorm:"type:text;serializer:json"`
	Notes           string    `gorm:"type:varchar(500)"`
	PaymentMethod   string    `gorm:"type:varchar(20);not null"`
	Location        string    `gorm:"type:varchar(100)"`
	ReceiptURL      string    `gorm:"type:text"`
	ReceiptFilename string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`

	User     *UserModel     `gorm:"foreignKey:UserID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}

	var receipt *entity.Receipt
	if m.ReceiptURL != "" || m.ReceiptFilename != "" {
		receipt = &entity.Receipt{
			URL:      m.ReceiptURL,
			Filename: m.ReceiptFilename,
		}
	}

	return &entity.Expense{
		ID:            m.ID,
		UserID:        m.UserID,
		Amount:        decimal.New(m.AmountCents, -2),
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		Date:          m.Date,
		Tags:          tags,
		Notes:         m.Notes,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		Location:      m.Location,
		Receipt:       receipt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ExpenseFromEntity converts a domain Expense entity to an ExpenseModel.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	m := &ExpenseModel{
		ID:            expense.ID,
		UserID:        expense.UserID,
		AmountCents:   expense.Amount.Mul(centsFactor).IntPart(),
		Description:   expense.Description,
		CategoryID:    expense.CategoryID,
		Date:          expense.Date,
		Tags:          expense.Tags,
		Notes:         expense.Notes,
		PaymentMethod: string(expense.PaymentMethod),
		Location:      expense.Location,
		CreatedAt:     expense.CreatedAt,
		UpdatedAt:     expense.UpdatedAt,
	}
	if expense.Receipt != nil {
		m.ReceiptURL = expense.Receipt.URL
		m.ReceiptFilename = expense.Receipt.Filename
	}
	return m
}
