// internal/repository/postgres/expense_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// expenseProjection is the joined column list shared by every expense read.
// user_id is stored as a single-element text array; the scalar is extracted
// here so nothing above this layer ever sees the array representation.
const expenseProjection = `
	e.id, e.cat_id, e.expense_name, e.description, e.amount, e.date,
	(e.user_id[1])::bigint AS user_id,
	c.category_name,
	u.user_name, u.email
	FROM expenses e
	LEFT JOIN categories c ON e.cat_id = c.cat_id
	LEFT JOIN users u ON (e.user_id[1])::bigint = u.id`

// ExpenseRepository implements repository.ExpenseRepository for PostgreSQL.
type ExpenseRepository struct {
	// No state: methods receive their DBExecutor directly.
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) repository.ExpenseRepository {
	return &ExpenseRepository{}
}

// CreateExpense inserts a new expense using the provided DBExecutor.
// The scalar UserID is wrapped into the single-element array encoding here.
func (r *ExpenseRepository) CreateExpense(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `INSERT INTO expenses (cat_id, expense_name, description, amount, date, user_id)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		expense.CatID,
		expense.ExpenseName,
		expense.Description,
		expense.Amount,
		expense.Date,
		pq.Array([]string{strconv.FormatInt(expense.UserID, 10)}),
	).Scan(&expense.ID)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// ListExpenses retrieves all expenses joined to users and categories.
func (r *ExpenseRepository) ListExpenses(ctx context.Context, q repository.DBExecutor) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT` + expenseProjection
	if err := q.SelectContext(ctx, &expenses, query); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpenseByID retrieves a single joined expense by id.
func (r *ExpenseRepository) GetExpenseByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Expense, error) {
	var expense domain.Expense
	query := `SELECT` + expenseProjection + `
	WHERE e.id = $1`
	err := q.GetContext(ctx, &expense, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense by ID %d: %w", id, err)
	}
	return &expense, nil
}

// GetExpensesByDateRange retrieves expenses within the inclusive instant
// range, newest first. Callers expand calendar dates to full-day bounds.
func (r *ExpenseRepository) GetExpensesByDateRange(ctx context.Context, q repository.DBExecutor, start, end time.Time) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT` + expenseProjection + `
	WHERE e.date >= $1 AND e.date <= $2
	ORDER BY e.date DESC`
	if err := q.SelectContext(ctx, &expenses, query, start, end); err != nil {
		return nil, fmt.Errorf("failed to get expenses between %s and %s: %w",
			start.Format(time.RFC3339), end.Format(time.RFC3339), err)
	}
	return expenses, nil
}

// GetExpensesByAmountRange retrieves expenses with low <= amount <= high,
// newest first.
func (r *ExpenseRepository) GetExpensesByAmountRange(ctx context.Context, q repository.DBExecutor, low, high decimal.Decimal) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT` + expenseProjection + `
	WHERE e.amount >= $1 AND e.amount <= $2
	ORDER BY e.date DESC`
	if err := q.SelectContext(ctx, &expenses, query, low, high); err != nil {
		return nil, fmt.Errorf("failed to get expenses between amounts %s and %s: %w", low, high, err)
	}
	return expenses, nil
}

// GetExpensesByAmount retrieves expenses matching the amount exactly.
func (r *ExpenseRepository) GetExpensesByAmount(ctx context.Context, q repository.DBExecutor, amount decimal.Decimal) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT` + expenseProjection + `
	WHERE e.amount = $1`
	if err := q.SelectContext(ctx, &expenses, query, amount); err != nil {
		return nil, fmt.Errorf("failed to get expenses with amount %s: %w", amount, err)
	}
	return expenses, nil
}

// GetExpensesByUser retrieves a user's expenses, newest first, joining on the
// scalar extracted from the stored single-element user reference.
func (r *ExpenseRepository) GetExpensesByUser(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT` + expenseProjection + `
	WHERE (e.user_id[1])::bigint = $1
	ORDER BY e.date DESC`
	if err := q.SelectContext(ctx, &expenses, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get expenses for user %d: %w", userID, err)
	}
	return expenses, nil
}

// Summarize returns count and sum over all expenses. COALESCE keeps the sum
// an exact zero decimal, not NULL, when the table is empty.
func (r *ExpenseRepository) Summarize(ctx context.Context, q repository.DBExecutor) (*domain.ExpenseSummary, error) {
	var summary domain.ExpenseSummary
	query := `SELECT COUNT(*) AS total_count,
                     COALESCE(SUM(amount), 0)::numeric AS total_amount
              FROM expenses`
	if err := q.GetContext(ctx, &summary, query); err != nil {
		return nil, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	return &summary, nil
}
