package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	LedgerID    string `json:"ledgerId" required:"true" doc:"Ledger UUID"`
	CategoryID  string `json:"categoryId" required:"true" doc:"Category UUID"`
	Date        string `json:"date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
	Description string `json:"description" required:"true" maxLength:"50"`
	Amount      string `json:"amount" required:"true" doc:"Decimal magnitude; the sign follows type"`
	Type        string `json:"type" required:"true" enum:"income,expense"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, p service.Principal, req service.TransactionCreateRequest) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transactions",
		Summary:       "Create transaction",
		Description:   "Records a transaction in one of the caller's ledgers.",
		Tags:          []string{"Transactions"},
		Security:      auth.Security(),
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseCreateTransactionInput converts the body into a service request.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionCreateRequest, error) {
	var req service.TransactionCreateRequest
	var err error

	if req.LedgerID, err = handlers.ParseID("ledgerId", input.Body.LedgerID); err != nil {
		return req, err
	}
	if req.CategoryID, err = handlers.ParseID("categoryId", input.Body.CategoryID); err != nil {
		return req, err
	}
	if req.Date, err = parseDate(input.Body.Date); err != nil {
		return req, err
	}
	if req.Amount, err = parseAmount(input.Body.Amount); err != nil {
		return req, err
	}
	req.Description = input.Body.Description
	req.Type = input.Body.Type
	return req, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*TransactionOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	req, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	tx, err := handlers.Timed(ctx, "createTransactionMs", func() (*service.Transaction, error) {
		return h.TransactionService.CreateTransaction(ctx, p, req)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	return &TransactionOutput{Body: fromService(*tx)}, nil
}
