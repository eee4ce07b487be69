// internal/domain/category.go
package domain

import "time"

// Category is a spending category. Categories are seed data: the API reads
// them (via expense joins) but exposes no mutation endpoint.
type Category struct {
	CatID        int64     `db:"cat_id" json:"cat_id"` // Primary key, BIGSERIAL in DB
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	CategoryName string    `db:"category_name" json:"category_name"`
	CategoryDesc *string   `db:"category_desc" json:"category_desc"` // Optional description
}

// NewCategory creates a new Category instance.
func NewCategory(name string, desc *string) *Category {
	return &Category{
		CreatedAt:    time.Now().UTC(),
		CategoryName: name,
		CategoryDesc: desc,
	}
}
