package ledger

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Ledger is the API response model for a ledger.
type Ledger struct {
	ID          string `json:"id" doc:"Ledger UUID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency" doc:"ISO 4217 code"`
	CreatedAt   string `json:"createdAt" format:"date-time"`
}

func fromService(l service.Ledger) Ledger {
	return Ledger{
		ID:          l.ID.String(),
		Name:        l.Name,
		Description: l.Description,
		Currency:    l.Currency,
		CreatedAt:   handlers.FormatTime(l.CreatedAt),
	}
}

type ledgerService interface {
	ListLedgers(ctx context.Context, p service.Principal) ([]service.Ledger, error)
	GetLedger(ctx context.Context, p service.Principal, id uuid.UUID) (*service.Ledger, error)
	CreateLedger(ctx context.Context, p service.Principal, req service.LedgerCreateRequest) (*service.Ledger, error)
	UpdateLedger(ctx context.Context, p service.Principal, id uuid.UUID, req service.LedgerUpdateRequest) (*service.Ledger, error)
	DeleteLedger(ctx context.Context, p service.Principal, id uuid.UUID) (int64, error)
}
