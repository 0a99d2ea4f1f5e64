package ledger

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type LedgerPath struct {
	ID string `path:"id" doc:"Ledger UUID"`
}

type LedgerOutput struct {
	Body Ledger
}

type ListLedgersOutput struct {
	Body struct {
		Ledgers []Ledger `json:"ledgers"`
	}
}

type CreateLedgerBody struct {
	Name        string `json:"name" required:"true" minLength:"2" maxLength:"20"`
	Description string `json:"description,omitempty" maxLength:"50"`
	Currency    string `json:"currency,omitempty" doc:"ISO 4217 code, defaults to the server's base currency"`
}

type CreateLedgerInput struct {
	Body CreateLedgerBody
}

type UpdateLedgerBody struct {
	Name        *string `json:"name,omitempty" minLength:"2" maxLength:"20"`
	Description *string `json:"description,omitempty" maxLength:"50"`
	Currency    *string `json:"currency,omitempty"`
}

type UpdateLedgerInput struct {
	LedgerPath
	Body UpdateLedgerBody
}

type DeleteLedgerOutput struct {
	Body struct {
		DeletedTransactions int64 `json:"deletedTransactions" doc:"Transactions removed with the ledger"`
	}
}

// Handler serves /v1/ledgers.
type Handler struct {
	LedgerService ledgerService
}

func NewHandler(svc ledgerService) *Handler {
	return &Handler{LedgerService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Ledgers"}

	huma.Register(api, huma.Operation{
		OperationID: "list-ledgers",
		Method:      http.MethodGet,
		Path:        "/v1/ledgers",
		Summary:     "List ledgers",
		Description: "Returns the caller's ledgers, newest first.",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "create-ledger",
		Method:        http.MethodPost,
		Path:          "/v1/ledgers",
		Summary:       "Create ledger",
		Tags:          tags,
		Security:      auth.Security(),
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "get-ledger",
		Method:      http.MethodGet,
		Path:        "/v1/ledgers/{id}",
		Summary:     "Get ledger",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-ledger",
		Method:      http.MethodPut,
		Path:        "/v1/ledgers/{id}",
		Summary:     "Update ledger",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID: "delete-ledger",
		Method:      http.MethodDelete,
		Path:        "/v1/ledgers/{id}",
		Summary:     "Delete ledger",
		Description: "Deletes a ledger together with all of its transactions.",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListLedgersOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	ledgers, err := h.LedgerService.ListLedgers(ctx, p)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	out := &ListLedgersOutput{}
	out.Body.Ledgers = make([]Ledger, len(ledgers))
	for i, l := range ledgers {
		out.Body.Ledgers[i] = fromService(l)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateLedgerInput) (*LedgerOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	l, err := h.LedgerService.CreateLedger(ctx, p, service.LedgerCreateRequest{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Currency:    input.Body.Currency,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &LedgerOutput{Body: fromService(*l)}, nil
}

func (h *Handler) get(ctx context.Context, input *LedgerPath) (*LedgerOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("ledger id", input.ID)
	if err != nil {
		return nil, err
	}
	l, err := h.LedgerService.GetLedger(ctx, p, id)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &LedgerOutput{Body: fromService(*l)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateLedgerInput) (*LedgerOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("ledger id", input.ID)
	if err != nil {
		return nil, err
	}
	l, err := h.LedgerService.UpdateLedger(ctx, p, id, service.LedgerUpdateRequest{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Currency:    input.Body.Currency,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &LedgerOutput{Body: fromService(*l)}, nil
}

func (h *Handler) delete(ctx context.Context, input *LedgerPath) (*DeleteLedgerOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("ledger id", input.ID)
	if err != nil {
		return nil, err
	}

	deleted, err := handlers.Timed(ctx, "deleteLedgerMs", func() (int64, error) {
		return h.LedgerService.DeleteLedger(ctx, p, id)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	out := &DeleteLedgerOutput{}
	out.Body.DeletedTransactions = deleted
	return out, nil
}
