package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Ledger is the service view of a ledger.
type Ledger struct {
	ID          uuid.UUID
	Name        string
	Description string
	Currency    string
	CreatedAt   time.Time
}

func ledgerFromStorage(l *sqlconfig.Ledger) Ledger {
	return Ledger{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		Currency:    l.Currency,
		CreatedAt:   l.CreatedAt,
	}
}

type LedgerService struct {
	storage      *storage.Storage
	operator     actionProcessor
	lookup       *Lookup
	baseCurrency string
}

func NewLedgerService(store *storage.Storage, op actionProcessor, lookup *Lookup, baseCurrency string) *LedgerService {
	return &LedgerService{
		storage:      store,
		operator:     op,
		lookup:       lookup,
		baseCurrency: baseCurrency,
	}
}

// ListLedgers returns the caller's ledgers, newest first.
func (s *LedgerService) ListLedgers(ctx context.Context, p Principal) ([]Ledger, error) {
	rows, err := s.storage.Ledgers.ListByUser(ctx, p.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	ledgers := make([]Ledger, len(rows))
	for i, row := range rows {
		ledgers[i] = ledgerFromStorage(row)
	}
	return ledgers, nil
}

func (s *LedgerService) GetLedger(ctx context.Context, p Principal, id uuid.UUID) (*Ledger, error) {
	row, err := s.storage.Ledgers.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	if row.UserID != p.UserID {
		return nil, ErrNotFound
	}
	view := ledgerFromStorage(row)
	return &view, nil
}

type LedgerCreateRequest struct {
	Name        string
	Description string
	Currency    string
}

func (s *LedgerService) CreateLedger(ctx context.Context, p Principal, req LedgerCreateRequest) (*Ledger, error) {
	name, err := checkLength("name", req.Name, minLedgerNameLength, maxLedgerNameLength)
	if err != nil {
		return nil, err
	}
	description, err := checkLength("description", req.Description, 0, maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	currency := s.baseCurrency
	if req.Currency != "" {
		if currency, err = normalizeCurrency(req.Currency); err != nil {
			return nil, err
		}
	}

	action := &actions.CreateLedger{Create: sqlconfig.LedgerCreate{
		UserID:      p.UserID,
		Name:        name,
		Description: description,
		Currency:    currency,
	}}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	view := ledgerFromStorage(action.Created)
	return &view, nil
}

// LedgerUpdateRequest changes only the non-nil fields.
type LedgerUpdateRequest struct {
	Name        *string
	Description *string
	Currency    *string
}

func (s *LedgerService) UpdateLedger(ctx context.Context, p Principal, id uuid.UUID, req LedgerUpdateRequest) (*Ledger, error) {
	update := sqlconfig.LedgerUpdate{}
	if req.Name != nil {
		name, err := checkLength("name", *req.Name, minLedgerNameLength, maxLedgerNameLength)
		if err != nil {
			return nil, err
		}
		update.Name = omit.From(name)
	}
	if req.Description != nil {
		description, err := checkLength("description", *req.Description, 0, maxDescriptionLength)
		if err != nil {
			return nil, err
		}
		update.Description = omit.From(description)
	}
	if req.Currency != nil {
		currency, err := normalizeCurrency(*req.Currency)
		if err != nil {
			return nil, err
		}
		update.Currency = omit.From(currency)
	}

	action := &actions.UpdateLedger{UserID: p.UserID, LedgerID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	s.lookup.InvalidateLedger(id)

	view := ledgerFromStorage(action.Updated)
	return &view, nil
}

// DeleteLedger removes the ledger and its transactions. It returns how many
// transactions went with it.
func (s *LedgerService) DeleteLedger(ctx context.Context, p Principal, id uuid.UUID) (int64, error) {
	action := &actions.DeleteLedger{UserID: p.UserID, LedgerID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return 0, translateError(err)
	}
	s.lookup.InvalidateLedger(id)
	return action.DeletedTransactions, nil
}
