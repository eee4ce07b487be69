// internal/repository/postgres/category_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"

	"github.com/jmoiron/sqlx"
)

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

// CreateCategory inserts a new category using the provided DBExecutor.
// Only the seeding batch calls this; the API layer has no category mutation.
func (r *CategoryRepository) CreateCategory(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (created_at, category_name, category_desc)
              VALUES ($1, $2, $3) RETURNING cat_id`
	err := q.QueryRowContext(ctx, query,
		category.CreatedAt,
		category.CategoryName,
		category.CategoryDesc,
	).Scan(&category.CatID)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// GetCategoryByID retrieves a single category by id.
func (r *CategoryRepository) GetCategoryByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT cat_id, created_at, category_name, category_desc
              FROM categories WHERE cat_id = $1`
	err := q.GetContext(ctx, &category, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID %d: %w", id, err)
	}
	return &category, nil
}

// ListCategories retrieves all categories.
func (r *CategoryRepository) ListCategories(ctx context.Context, q repository.DBExecutor) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT cat_id, created_at, category_name, category_desc FROM categories`
	if err := q.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
