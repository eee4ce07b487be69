// internal/service/expense_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"expense-ledger/internal/domain"
	"expense-ledger/internal/repository"
	"expense-ledger/internal/util"

	"github.com/shopspring/decimal"
)

// calendarDate is the layout for the date-range path parameters.
const calendarDate = "2006-01-02"

// AddExpenseInput is the validated input for creating an expense.
// Date accepts either an RFC 3339 timestamp or a plain calendar date.
type AddExpenseInput struct {
	CatID       int64
	ExpenseName string
	Description *string
	Amount      decimal.Decimal
	Date        string
	UserID      int64
}

// ExpenseService defines the interface for expense-related business logic.
type ExpenseService interface {
	ListExpenses(ctx context.Context) ([]domain.Expense, error)
	GetExpenseByID(ctx context.Context, id int64) (*domain.Expense, error)
	GetExpensesByDateRange(ctx context.Context, start, end string) ([]domain.Expense, error)
	GetExpensesByAmountRange(ctx context.Context, low, high decimal.Decimal) ([]domain.Expense, error)
	GetExpensesByAmount(ctx context.Context, amount decimal.Decimal) ([]domain.Expense, error)
	GetExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error)
	Summary(ctx context.Context) (*domain.ExpenseSummary, error)
	AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error)
}

// expenseService implements the ExpenseService interface.
type expenseService struct {
	dbExecutor  repository.DBExecutor // Shared pool for single-statement reads/writes
	expenseRepo repository.ExpenseRepository
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(dbExecutor repository.DBExecutor, expenseRepo repository.ExpenseRepository) ExpenseService {
	return &expenseService{
		dbExecutor:  dbExecutor,
		expenseRepo: expenseRepo,
	}
}

// ListExpenses returns all expenses joined with category and user metadata.
func (s *expenseService) ListExpenses(ctx context.Context) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListExpenses(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}

// GetExpenseByID returns a single joined expense. The id must be positive;
// validation happens before any store access.
func (s *expenseService) GetExpenseByID(ctx context.Context, id int64) (*domain.Expense, error) {
	if id <= 0 {
		return nil, fmt.Errorf("expense id must be positive: %w", util.ErrInvalidInput)
	}
	expense, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("get expense %d: %w", id, err)
	}
	return expense, nil
}

// GetExpensesByDateRange returns expenses between two calendar dates,
// expanded to [start 00:00:00Z, end 23:59:59Z] inclusive, newest first.
func (s *expenseService) GetExpensesByDateRange(ctx context.Context, start, end string) ([]domain.Expense, error) {
	startDate, err := time.ParseInLocation(calendarDate, start, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("start date '%s' must be YYYY-MM-DD: %w", start, util.ErrInvalidInput)
	}
	endDate, err := time.ParseInLocation(calendarDate, end, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("end date '%s' must be YYYY-MM-DD: %w", end, util.ErrInvalidInput)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date precedes start date: %w", util.ErrInvalidInput)
	}

	// Inclusive of the full day at both ends.
	endOfDay := endDate.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	expenses, err := s.expenseRepo.GetExpensesByDateRange(ctx, s.dbExecutor, startDate, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("get expenses by date range: %w", err)
	}
	return expenses, nil
}

// GetExpensesByAmountRange returns expenses within the inclusive amount
// range, newest first. Both bounds must be positive.
func (s *expenseService) GetExpensesByAmountRange(ctx context.Context, low, high decimal.Decimal) ([]domain.Expense, error) {
	if low.LessThanOrEqual(decimal.Zero) || high.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount bounds must be positive: %w", util.ErrInvalidInput)
	}
	if high.LessThan(low) {
		return nil, fmt.Errorf("upper bound below lower bound: %w", util.ErrInvalidInput)
	}
	expenses, err := s.expenseRepo.GetExpensesByAmountRange(ctx, s.dbExecutor, low, high)
	if err != nil {
		return nil, fmt.Errorf("get expenses by amount range: %w", err)
	}
	return expenses, nil
}

// GetExpensesByAmount returns expenses matching the amount exactly.
// No match is ErrNotFound.
func (s *expenseService) GetExpensesByAmount(ctx context.Context, amount decimal.Decimal) ([]domain.Expense, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount must be positive: %w", util.ErrInvalidInput)
	}
	expenses, err := s.expenseRepo.GetExpensesByAmount(ctx, s.dbExecutor, amount)
	if err != nil {
		return nil, fmt.Errorf("get expenses by amount: %w", err)
	}
	if len(expenses) == 0 {
		return nil, util.ErrNotFound
	}
	return expenses, nil
}

// GetExpensesByUser returns a user's expenses, newest first. An empty result
// is success with zero rows, not an error.
func (s *expenseService) GetExpensesByUser(ctx context.Context, userID int64) ([]domain.Expense, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id must be positive: %w", util.ErrInvalidInput)
	}
	expenses, err := s.expenseRepo.GetExpensesByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("get expenses for user %d: %w", userID, err)
	}
	return expenses, nil
}

// Summary returns count and exact-decimal total over all expenses.
func (s *expenseService) Summary(ctx context.Context) (*domain.ExpenseSummary, error) {
	summary, err := s.expenseRepo.Summarize(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("summarize expenses: %w", err)
	}
	return summary, nil
}

// AddExpense validates the input, inserts the expense, then immediately
// re-reads the row joined with category and user metadata and returns that
// projection. The insert is a single attempt: if the re-read fails after a
// successful insert the error is reported, never retried, since replaying a
// non-idempotent insert would create a duplicate.
func (s *expenseService) AddExpense(ctx context.Context, input AddExpenseInput) (*domain.Expense, error) {
	if input.CatID <= 0 {
		return nil, fmt.Errorf("cat_id is required and must be positive: %w", util.ErrInvalidInput)
	}
	if input.ExpenseName == "" {
		return nil, fmt.Errorf("expense_name is required: %w", util.ErrInvalidInput)
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("amount is required and must be positive: %w", util.ErrInvalidInput)
	}
	if input.UserID <= 0 {
		return nil, fmt.Errorf("user_id is required and must be positive: %w", util.ErrInvalidInput)
	}
	date, err := parseExpenseDate(input.Date)
	if err != nil {
		return nil, err
	}

	expense := domain.NewExpense(input.CatID, input.ExpenseName, input.Description, input.Amount, date, input.UserID)
	if err := s.expenseRepo.CreateExpense(ctx, s.dbExecutor, expense); err != nil {
		return nil, fmt.Errorf("add expense: %w", err)
	}

	// The re-read error is deliberately not wrapped with %w: a missing row
	// after a successful insert is a store-level failure, not a client 404.
	created, err := s.expenseRepo.GetExpenseByID(ctx, s.dbExecutor, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("expense %d inserted but re-read failed: %v", expense.ID, err)
	}
	return created, nil
}

// parseExpenseDate accepts an RFC 3339 timestamp or a plain calendar date,
// both interpreted in UTC.
func parseExpenseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required: %w", util.ErrInvalidInput)
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation(calendarDate, raw, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("date '%s' must be RFC 3339 or YYYY-MM-DD: %w", raw, util.ErrInvalidInput)
}
