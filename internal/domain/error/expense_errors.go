// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense does not exist or is
	// not owned by the caller.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidCategory is returned when an expense references a category
	// that is inactive or not owned by the caller.
	ErrInvalidCategory = errors.New("invalid category")
)
