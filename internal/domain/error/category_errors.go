// Package error defines domain-specific errors for the expense tracker.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or is
	// not owned by the caller. Ownership misses are deliberately
	// indistinguishable from absence.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when a category name is already in
	// use among the caller's active categories.
	ErrCategoryNameExists = errors.New("category with this name already exists")
)
