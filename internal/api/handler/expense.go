// internal/api/handler/expense.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"expense-ledger/internal/api/types"
	"expense-ledger/internal/service"
	"expense-ledger/internal/util"
)

// ExpenseHandler handles HTTP requests related to expense operations.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: svc,
		logger:  logger,
	}
}

// ListExpenses handles the list-all-expenses request.
// GET /expenses/
func (h *ExpenseHandler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.ListExpenses(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message":  "List of all expenses",
		"expenses": expenses,
	})
}

// GetExpenseByID handles the lookup of a single expense by id.
// GET /expenses/{expenseID}
func (h *ExpenseHandler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "expenseID")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	expense, err := h.service.GetExpenseByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "Expense found",
		"expense": expense,
	})
}

// GetExpensesByDateRange handles the inclusive calendar-date range query.
// GET /expenses/date/{start}/{end}
func (h *ExpenseHandler) GetExpensesByDateRange(w http.ResponseWriter, r *http.Request) {
	start := chi.URLParam(r, "start")
	end := chi.URLParam(r, "end")

	expenses, err := h.service.GetExpensesByDateRange(r.Context(), start, end)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message":  fmt.Sprintf("Expenses %s to %s", start, end),
		"count":    len(expenses),
		"expenses": expenses,
	})
}

// GetExpensesByAmountRange handles the inclusive amount range query.
// GET /expenses/amounts/{low}/{high}
func (h *ExpenseHandler) GetExpensesByAmountRange(w http.ResponseWriter, r *http.Request) {
	low, err := decimal.NewFromString(chi.URLParam(r, "low"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	high, err := decimal.NewFromString(chi.URLParam(r, "high"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	expenses, err := h.service.GetExpensesByAmountRange(r.Context(), low, high)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message":  fmt.Sprintf("Expenses between %s and %s", low, high),
		"count":    len(expenses),
		"expenses": expenses,
	})
}

// GetExpensesByAmount handles the exact amount query.
// GET /expenses/amount/{amount}
func (h *ExpenseHandler) GetExpensesByAmount(w http.ResponseWriter, r *http.Request) {
	amount, err := decimal.NewFromString(chi.URLParam(r, "amount"))
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	expenses, err := h.service.GetExpensesByAmount(r.Context(), amount)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message":  "Expense found",
		"expenses": expenses,
	})
}

// GetExpensesByUser handles the per-user expense query. An empty result is a
// 200 with count 0, not a 404.
// GET /expenses/user/{userID}
func (h *ExpenseHandler) GetExpensesByUser(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "userID")
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	expenses, err := h.service.GetExpensesByUser(r.Context(), userID)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message":  fmt.Sprintf("Expenses for user %d", userID),
		"count":    len(expenses),
		"expenses": expenses,
	})
}

// GetSummary handles the aggregate summary request.
// GET /expenses/all/summary
func (h *ExpenseHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusOK, types.Envelope{
		"message": "Expenses summary",
		"summary": summary,
	})
}

// AddExpenseRequest represents the request body for adding an expense.
type AddExpenseRequest struct {
	CatID       int64           `json:"cat_id"`
	ExpenseName string          `json:"expense_name"`
	Description *string         `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	UserID      int64           `json:"user_id"`
}

// AddExpense handles expense creation: insert, then re-read the joined row.
// POST /expenses/add
func (h *ExpenseHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req AddExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}

	expense, err := h.service.AddExpense(r.Context(), service.AddExpenseInput{
		CatID:       req.CatID,
		ExpenseName: req.ExpenseName,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
		UserID:      req.UserID,
	})
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}

	respondWithJSON(w, h.logger, http.StatusCreated, types.Envelope{
		"message": "Expense created",
		"expense": expense,
	})
}
