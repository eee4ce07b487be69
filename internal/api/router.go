// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"expense-ledger/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(expenseHandler *handler.ExpenseHandler, userHandler *handler.UserHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Expense API routes. Static segments (date, amounts, amount, user,
	// all, add) take precedence over the {expenseID} wildcard.
	r.Route("/expenses", func(r chi.Router) {
		r.Get("/", expenseHandler.ListExpenses)
		r.Get("/{expenseID}", expenseHandler.GetExpenseByID)
		r.Get("/date/{start}/{end}", expenseHandler.GetExpensesByDateRange)
		r.Get("/amounts/{low}/{high}", expenseHandler.GetExpensesByAmountRange)
		r.Get("/amount/{amount}", expenseHandler.GetExpensesByAmount)
		r.Get("/user/{userID}", expenseHandler.GetExpensesByUser)
		r.Get("/all/summary", expenseHandler.GetSummary)
		r.Post("/add", expenseHandler.AddExpense)
	})

	// User API routes
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsers)
		r.Get("/{userID}", userHandler.GetUserByID)
		r.Get("/name/{userName}", userHandler.GetUsersByName)
		r.Get("/group/{groupName}", userHandler.GetUsersByGroup)
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
	})

	return r
}
