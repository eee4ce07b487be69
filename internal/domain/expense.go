// internal/domain/expense.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Expense represents a single expense record.
//
// UserID is a plain scalar here. The store keeps it as a single-element text
// array for compatibility with the original schema; the repository boundary
// translates between the two and the array never leaks past it.
//
// CategoryName, UserName and Email are join projections: populated by read
// queries that left-join categories and users, nil when the referenced row
// is missing or the query does not select them.
type Expense struct {
	ID          int64           `db:"id" json:"id"` // Primary key, BIGSERIAL in DB
	CatID       int64           `db:"cat_id" json:"cat_id"`
	ExpenseName string          `db:"expense_name" json:"expense_name"`
	Description *string         `db:"description" json:"description"` // Optional, null when absent
	Amount      decimal.Decimal `db:"amount" json:"amount"`           // NUMERIC(20, 4) in DB
	Date        time.Time       `db:"date" json:"date"`               // Stored and compared in UTC
	UserID      int64           `db:"user_id" json:"user_id"`

	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
	UserName     *string `db:"user_name" json:"user_name,omitempty"`
	Email        *string `db:"email" json:"email,omitempty"`
}

// NewExpense creates a new Expense instance with its date normalized to UTC.
func NewExpense(catID int64, name string, description *string, amount decimal.Decimal, date time.Time, userID int64) *Expense {
	return &Expense{
		CatID:       catID,
		ExpenseName: name,
		Description: description,
		Amount:      amount,
		Date:        date.UTC(),
		UserID:      userID,
	}
}

// ExpenseSummary is the aggregate over the whole expenses table.
// TotalAmount is an exact decimal, zero (not null) when the table is empty.
type ExpenseSummary struct {
	TotalCount  int64           `db:"total_count" json:"total_count"`
	TotalAmount decimal.Decimal `db:"total_amount" json:"total_amount"`
}
