// internal/api/handler/expense_test.go
package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"expense-ledger/internal/api"
	"expense-ledger/internal/api/handler"
	"expense-ledger/internal/domain"
	"expense-ledger/internal/util"
)

// newTestRouter wires the real chi router around mocked services so tests
// exercise routing, parameter parsing and status mapping without a store.
func newTestRouter(expenseSvc *MockExpenseService, userSvc *MockUserService) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	expenseHandler := handler.NewExpenseHandler(expenseSvc, logger)
	userHandler := handler.NewUserHandler(userSvc, logger)
	return api.NewRouter(expenseHandler, userHandler, logger)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func TestListExpenses(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("ListExpenses", mock.Anything).Return([]domain.Expense{{ID: 1}, {ID: 2}}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "List of all expenses", payload["message"])
	assert.Len(t, payload["expenses"], 2)
	expenseSvc.AssertExpectations(t)
}

func TestGetExpenseByID_NonNumericIDIsBadRequest(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	payload := decodeBody(t, rec)
	assert.Contains(t, payload, "error")
	expenseSvc.AssertNotCalled(t, "GetExpenseByID")
}

func TestGetExpenseByID_NotFound(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("GetExpenseByID", mock.Anything, int64(7)).Return(nil, util.ErrNotFound)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/7", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	expenseSvc.AssertExpectations(t)
}

func TestGetExpensesByDateRange_CountInEnvelope(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("GetExpensesByDateRange", mock.Anything, "2025-01-01", "2025-01-31").
		Return([]domain.Expense{{ID: 1}, {ID: 2}, {ID: 3}}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/date/2025-01-01/2025-01-31", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(3), payload["count"])
	assert.Equal(t, "Expenses 2025-01-01 to 2025-01-31", payload["message"])
	expenseSvc.AssertExpectations(t)
}

func TestGetExpensesByAmountRange_NonNumericBoundIsBadRequest(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/amounts/ten/50", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	expenseSvc.AssertNotCalled(t, "GetExpensesByAmountRange")
}

func TestGetExpensesByAmount_Found(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	amount := decimal.RequireFromString("45")
	expenseSvc.On("GetExpensesByAmount", mock.Anything, amount).
		Return([]domain.Expense{{ID: 1, Amount: amount}}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/amount/45", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Len(t, payload["expenses"], 1)
	expenseSvc.AssertExpectations(t)
}

func TestGetExpensesByUser_EmptyIsOKWithZeroCount(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("GetExpensesByUser", mock.Anything, int64(5)).Return([]domain.Expense{}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/user/5", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, float64(0), payload["count"])
	expenseSvc.AssertExpectations(t)
}

func TestGetSummary_RoutePrecedenceOverIDLookup(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("Summary", mock.Anything).
		Return(&domain.ExpenseSummary{TotalCount: 4, TotalAmount: decimal.NewFromInt(695)}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/all/summary", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	payload := decodeBody(t, rec)
	summary, ok := payload["summary"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(4), summary["total_count"])
	expenseSvc.AssertNotCalled(t, "GetExpenseByID")
	expenseSvc.AssertExpectations(t)
}

func TestAddExpense_Created(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	name := "Weekly shop"
	category := "Groceries"
	expenseSvc.On("AddExpense", mock.Anything, mock.Anything).
		Return(&domain.Expense{ID: 42, ExpenseName: name, CategoryName: &category}, nil)
	router := newTestRouter(expenseSvc, new(MockUserService))

	body := `{"cat_id":1,"expense_name":"Weekly shop","amount":100,"date":"2025-01-15","user_id":2}`
	rec := doRequest(t, router, http.MethodPost, "/expenses/add", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	payload := decodeBody(t, rec)
	assert.Equal(t, "Expense created", payload["message"])
	expense, ok := payload["expense"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Groceries", expense["category_name"])
	expenseSvc.AssertExpectations(t)
}

func TestAddExpense_MalformedBodyIsBadRequest(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodPost, "/expenses/add", `{"cat_id": "not-a-number"`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	expenseSvc.AssertNotCalled(t, "AddExpense")
}

func TestStoreFailureSurfacesMessageWith500(t *testing.T) {
	expenseSvc := new(MockExpenseService)
	expenseSvc.On("ListExpenses", mock.Anything).Return(nil, assert.AnError)
	router := newTestRouter(expenseSvc, new(MockUserService))

	rec := doRequest(t, router, http.MethodGet, "/expenses/", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	payload := decodeBody(t, rec)
	assert.Contains(t, payload["error"], assert.AnError.Error())
	expenseSvc.AssertExpectations(t)
}
