package transaction

import (
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
	"github.com/carson-networks/ledger-server/internal/service"
)

func newByIDTestAPI(t *testing.T, p *service.Principal, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	api := handlertest.NewAPI(t, p)
	NewGetTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func sampleTransaction(id uuid.UUID) *service.Transaction {
	return &service.Transaction{
		ID:        id,
		Date:      time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
		Amount:    decimal.RequireFromString("-30"),
		Type:      "expense",
		CreatedAt: time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_GetTransaction(t *testing.T) {
	p := handlertest.User()
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, *p, id).Return(sampleTransaction(id), nil)

	resp := newByIDTestAPI(t, p, svc).Get("/v1/transactions/" + id.String())

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"date":"2025-03-02"`)
}

func TestHTTP_GetTransaction_BadID(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newByIDTestAPI(t, handlertest.User(), svc).Get("/v1/transactions/nope")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "GetTransaction")
}

func TestHTTP_GetTransaction_NotOwned(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrNotFound)

	resp := newByIDTestAPI(t, handlertest.User(), svc).Get("/v1/transactions/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_UpdateTransaction_PartialBody(t *testing.T) {
	p := handlertest.User()
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, *p, id, mock.MatchedBy(func(req service.TransactionUpdateRequest) bool {
		return req.Type != nil && *req.Type == "income" &&
			req.Amount == nil && req.LedgerID == nil && req.Date == nil
	})).Return(sampleTransaction(id), nil)

	resp := newByIDTestAPI(t, p, svc).Put("/v1/transactions/"+id.String(), map[string]any{"type": "income"})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_ParsesFields(t *testing.T) {
	p := handlertest.User()
	id := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, *p, id, mock.MatchedBy(func(req service.TransactionUpdateRequest) bool {
		return req.CategoryID != nil && *req.CategoryID == categoryID &&
			req.Amount != nil && req.Amount.Equal(decimal.RequireFromString("7.25")) &&
			req.Date != nil && req.Date.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	})).Return(sampleTransaction(id), nil)

	resp := newByIDTestAPI(t, p, svc).Put("/v1/transactions/"+id.String(), map[string]any{
		"categoryId": categoryID.String(),
		"amount":     "7.25",
		"date":       "2025-04-01",
	})

	assert.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_InvalidDate(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newByIDTestAPI(t, handlertest.User(), svc).Put("/v1/transactions/"+uuid.Must(uuid.NewV4()).String(),
		map[string]any{"date": "April 1st"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "UpdateTransaction")
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	p := handlertest.User()
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("DeleteTransaction", mock.Anything, *p, id).Return(nil)

	resp := newByIDTestAPI(t, p, svc).Delete("/v1/transactions/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}
