// internal/repository/expense_repo.go
package repository

import (
	"context"
	"time"

	"expense-ledger/internal/domain"

	"github.com/shopspring/decimal"
)

// ExpenseRepository defines the interface for expense data operations.
// Every read returns rows enriched with category_name, user_name and email
// via left joins; the single-element user_id array in the store is translated
// to a scalar at this boundary and never exposed past it.
type ExpenseRepository interface {
	// CreateExpense inserts a new expense and sets its generated id.
	CreateExpense(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	// ListExpenses retrieves all expenses joined to users and categories.
	ListExpenses(ctx context.Context, q DBExecutor) ([]domain.Expense, error)
	// GetExpenseByID retrieves a single joined expense by id.
	GetExpenseByID(ctx context.Context, q DBExecutor, id int64) (*domain.Expense, error)
	// GetExpensesByDateRange retrieves expenses with start <= date <= end,
	// newest first.
	GetExpensesByDateRange(ctx context.Context, q DBExecutor, start, end time.Time) ([]domain.Expense, error)
	// GetExpensesByAmountRange retrieves expenses with low <= amount <= high,
	// newest first.
	GetExpensesByAmountRange(ctx context.Context, q DBExecutor, low, high decimal.Decimal) ([]domain.Expense, error)
	// GetExpensesByAmount retrieves expenses matching the amount exactly.
	GetExpensesByAmount(ctx context.Context, q DBExecutor, amount decimal.Decimal) ([]domain.Expense, error)
	// GetExpensesByUser retrieves a user's expenses, newest first. An empty
	// result is a valid outcome, not an error.
	GetExpensesByUser(ctx context.Context, q DBExecutor, userID int64) ([]domain.Expense, error)
	// Summarize returns count and exact-decimal sum over all expenses.
	Summarize(ctx context.Context, q DBExecutor) (*domain.ExpenseSummary, error)
}
