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

// UpdateTransactionBody changes only the fields present.
type UpdateTransactionBody struct {
	LedgerID    *string `json:"ledgerId,omitempty"`
	CategoryID  *string `json:"categoryId,omitempty"`
	Date        *string `json:"date,omitempty" doc:"Calendar date, YYYY-MM-DD"`
	Description *string `json:"description,omitempty" maxLength:"50"`
	Amount      *string `json:"amount,omitempty" doc:"Decimal magnitude; the sign follows type"`
	Type        *string `json:"type,omitempty" enum:"income,expense"`
}

type UpdateTransactionInput struct {
	TransactionPath
	Body UpdateTransactionBody
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, p service.Principal, id uuid.UUID, req service.TransactionUpdateRequest) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/v1/transactions/{id}",
		Summary:     "Update transaction",
		Description: "Partially updates a transaction. Changing type or amount re-signs the stored amount.",
		Tags:        []string{"Transactions"},
		Security:    auth.Security(),
	}, h.handle)
}

func parseUpdateTransactionInput(body UpdateTransactionBody) (service.TransactionUpdateRequest, error) {
	req := service.TransactionUpdateRequest{
		Description: body.Description,
		Type:        body.Type,
	}
	var err error

	if req.LedgerID, err = handlers.ParseOptionalID("ledgerId", body.LedgerID); err != nil {
		return req, err
	}
	if req.CategoryID, err = handlers.ParseOptionalID("categoryId", body.CategoryID); err != nil {
		return req, err
	}
	if body.Date != nil {
		date, err := parseDate(*body.Date)
		if err != nil {
			return req, err
		}
		req.Date = &date
	}
	if body.Amount != nil {
		amount, err := parseAmount(*body.Amount)
		if err != nil {
			return req, err
		}
		req.Amount = &amount
	}
	return req, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*TransactionOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := input.parse()
	if err != nil {
		return nil, err
	}
	req, err := parseUpdateTransactionInput(input.Body)
	if err != nil {
		return nil, err
	}

	tx, err := handlers.Timed(ctx, "updateTransactionMs", func() (*service.Transaction, error) {
		return h.TransactionService.UpdateTransaction(ctx, p, id, req)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &TransactionOutput{Body: fromService(*tx)}, nil
}
