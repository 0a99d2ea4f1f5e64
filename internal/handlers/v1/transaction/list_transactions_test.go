package transaction

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/handlers/handlertest"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/service"
)

func newListTestAPI(t *testing.T, p *service.Principal, svc transactionLister) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, p)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	cursor, err := parseListTransactionsInput(&ListTransactionsInput{Limit: 20})

	assert.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, 0, cursor.Position)
	assert.Equal(t, 20, cursor.Limit)
	assert.True(t, cursor.MaxCreationTime.IsZero())
}

func TestParseListTransactionsInput_WithCursor(t *testing.T) {
	cursorMaxTime := "2025-06-15T08:00:00Z"

	cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Position:        40,
		Limit:           10,
		MaxCreationTime: cursorMaxTime,
	})
	assert.NoError(t, err)

	expectedMax, _ := time.Parse(time.RFC3339, cursorMaxTime)
	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, expectedMax, cursor.MaxCreationTime)
}

func TestParseListTransactionsInput_InvalidCursorMaxCreationTime(t *testing.T) {
	cursor, err := parseListTransactionsInput(&ListTransactionsInput{
		Limit:           10,
		MaxCreationTime: "not-a-date",
	})

	assert.Error(t, err)
	assert.Nil(t, cursor)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	p := handlertest.User()
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, *p, reporting.FilterParams{}, mock.Anything).
		Return([]service.Transaction{}, nil, nil)

	resp := newListTestAPI(t, p, mockSvc).Get("/v1/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"transactions":[]`)
	assert.NotContains(t, resp.Body.String(), "nextCursor")
}

func TestHTTP_ListTransactions_PassesFilters(t *testing.T) {
	p := handlertest.User()
	ledgerID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, *p, reporting.FilterParams{
		LedgerID:    ledgerID.String(),
		Type:        "expense",
		Description: "coffee",
		StartDate:   "2025-01-01",
		EndDate:     "2025-01-31",
	}, mock.MatchedBy(func(c *service.TransactionCursor) bool {
		return c.Limit == 5 && c.Position == 10
	})).Return([]service.Transaction{}, nil, nil)

	resp := newListTestAPI(t, p, mockSvc).Get("/v1/transactions?ledgerId=" + ledgerID.String() +
		"&type=expense&description=coffee&startDate=2025-01-01&endDate=2025-01-31&limit=5&position=10")

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithNextCursor(t *testing.T) {
	p := handlertest.User()
	created := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	tx := service.Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		LedgerID:   uuid.Must(uuid.NewV4()),
		CategoryID: uuid.Must(uuid.NewV4()),
		Date:       created,
		Amount:     decimal.RequireFromString("5.00"),
		Type:       reporting.TypeIncome,
		CreatedAt:  created,
	}

	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, *p, mock.Anything, mock.Anything).
		Return([]service.Transaction{tx}, &service.TransactionCursor{Position: 1, Limit: 1, MaxCreationTime: created}, nil)

	resp := newListTestAPI(t, p, mockSvc).Get("/v1/transactions?limit=1")

	require.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, tx.ID.String(), body.Transactions[0].ID)
	assert.Equal(t, "5", body.Transactions[0].Amount)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
	assert.Equal(t, "2025-07-01T12:00:00Z", body.NextCursor.MaxCreationTime)
}

func TestHTTP_ListTransactions_LimitOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionService)

	resp := newListTestAPI(t, handlertest.User(), mockSvc).Get("/v1/transactions?limit=500")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
}

func TestHTTP_ListTransactions_InvalidFilter(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, service.ErrValidation)

	resp := newListTestAPI(t, handlertest.User(), mockSvc).Get("/v1/transactions?startDate=yesterday")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, handlertest.User(), mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
