package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, p service.Principal, req service.TransactionCreateRequest) (*service.Transaction, error) {
	args := m.Called(ctx, p, req)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, p service.Principal, params reporting.FilterParams, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, p, params, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, p service.Principal, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, p, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, p service.Principal, id uuid.UUID, req service.TransactionUpdateRequest) (*service.Transaction, error) {
	args := m.Called(ctx, p, id, req)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, p service.Principal, id uuid.UUID) error {
	return m.Called(ctx, p, id).Error(0)
}
