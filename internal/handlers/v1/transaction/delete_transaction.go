package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, p service.Principal, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /v1/transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Tags:          []string{"Transactions"},
		Security:      auth.Security(),
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionPath) (*struct{}, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.parse()
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.DeleteTransaction(ctx, p, id); err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return nil, nil
}
