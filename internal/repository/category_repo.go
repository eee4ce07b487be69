// internal/repository/category_repo.go
package repository

import (
	"context"

	"expense-ledger/internal/domain"
)

// CategoryRepository defines the interface for category data operations.
// Categories are seed data: creation happens only in the seeding batch, the
// API layer only ever reads them.
type CategoryRepository interface {
	// CreateCategory inserts a new category and sets its generated id.
	CreateCategory(ctx context.Context, q DBExecutor, category *domain.Category) error
	// GetCategoryByID retrieves a single category by id.
	GetCategoryByID(ctx context.Context, q DBExecutor, id int64) (*domain.Category, error)
	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context, q DBExecutor) ([]domain.Category, error)
}
