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

type transactionGetter interface {
	GetTransaction(ctx context.Context, p service.Principal, id uuid.UUID) (*service.Transaction, error)
}

// GetTransactionHandler handles GET /v1/transactions/{id}.
type GetTransactionHandler struct {
	TransactionService transactionGetter
}

func NewGetTransactionHandler(svc transactionGetter) *GetTransactionHandler {
	return &GetTransactionHandler{TransactionService: svc}
}

func (h *GetTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Tags:        []string{"Transactions"},
		Security:    auth.Security(),
	}, h.handle)
}

func (h *GetTransactionHandler) handle(ctx context.Context, input *TransactionPath) (*TransactionOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.parse()
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetTransaction(ctx, p, id)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &TransactionOutput{Body: fromService(*tx)}, nil
}
