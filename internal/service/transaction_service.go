package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage  *storage.Storage
	operator actionProcessor
	lookup   *Lookup
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, op actionProcessor, lookup *Lookup) *TransactionService {
	return &TransactionService{storage: store, operator: op, lookup: lookup}
}

// ListTransactions returns a page of the caller's transactions matching the
// filter, newest date first, using cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, p Principal, params reporting.FilterParams, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	f, err := reporting.ParseFilter(p.UserID, params)
	if err != nil {
		return nil, nil, translateError(err)
	}

	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	if cursor != nil {
		if cursor.Limit < 1 || cursor.Limit > maxLimit {
			return nil, nil, validationError("limit must be between 1 and %d", maxLimit)
		}
		if cursor.Position < 0 {
			return nil, nil, validationError("position must be non-negative")
		}
		limit = cursor.Limit
		offset = cursor.Position
		if !cursor.MaxCreationTime.IsZero() {
			maxCreationTime = &cursor.MaxCreationTime
		}
	}

	filter := &sqlconfig.TransactionFilter{
		Filter:          f,
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
	}

	rows, err := s.storage.Transactions.List(ctx, filter)
	if err != nil {
		return nil, nil, translateError(err)
	}

	if len(rows) == 0 {
		return []Transaction{}, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := latestCreation(rows)
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
		}
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		if transactions[i], err = s.enrich(ctx, row); err != nil {
			return nil, nil, err
		}
	}

	return transactions, nextCursor, nil
}

// latestCreation pins later pages to rows that existed when the first page
// was read. Rows are ordered by date, so the newest creation time can be
// anywhere in the page.
func latestCreation(rows []*sqlconfig.Transaction) time.Time {
	latest := rows[0].CreatedAt
	for _, row := range rows[1:] {
		if row.CreatedAt.After(latest) {
			latest = row.CreatedAt
		}
	}
	return latest
}

func (s *TransactionService) GetTransaction(ctx context.Context, p Principal, id uuid.UUID) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err)
	}
	if row.UserID != p.UserID {
		return nil, ErrNotFound
	}

	view, err := s.enrich(ctx, row)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateTransaction records a transaction in one of the caller's ledgers.
func (s *TransactionService) CreateTransaction(ctx context.Context, p Principal, req TransactionCreateRequest) (*Transaction, error) {
	t, err := reporting.ParseType(req.Type)
	if err != nil {
		return nil, translateError(err)
	}
	description, err := checkLength("description", req.Description, 1, maxDescriptionLength)
	if err != nil {
		return nil, err
	}
	if req.Date.IsZero() {
		return nil, validationError("date is required")
	}

	action := &actions.CreateTransaction{
		UserID:      p.UserID,
		LedgerID:    req.LedgerID,
		CategoryID:  req.CategoryID,
		Date:        reporting.CalendarDate(req.Date),
		Description: description,
		Magnitude:   req.Amount,
		Type:        t,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}

	view, err := s.enrich(ctx, action.Created)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// UpdateTransaction applies a partial update. A change to the type or the
// amount re-derives the stored sign.
func (s *TransactionService) UpdateTransaction(ctx context.Context, p Principal, id uuid.UUID, req TransactionUpdateRequest) (*Transaction, error) {
	action := &actions.UpdateTransaction{
		UserID:        p.UserID,
		TransactionID: id,
		LedgerID:      req.LedgerID,
		CategoryID:    req.CategoryID,
		AmountChange:  reporting.AmountChange{Magnitude: req.Amount},
	}
	if req.Type != nil {
		t, err := reporting.ParseType(*req.Type)
		if err != nil {
			return nil, translateError(err)
		}
		action.AmountChange.Type = &t
	}
	if req.Description != nil {
		description, err := checkLength("description", *req.Description, 1, maxDescriptionLength)
		if err != nil {
			return nil, err
		}
		action.Description = &description
	}
	if req.Date != nil {
		if req.Date.IsZero() {
			return nil, validationError("date is required")
		}
		date := reporting.CalendarDate(*req.Date)
		action.Date = &date
	}

	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}

	view, err := s.enrich(ctx, action.Updated)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, p Principal, id uuid.UUID) error {
	action := &actions.DeleteTransaction{UserID: p.UserID, TransactionID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return translateError(err)
	}
	return nil
}

func (s *TransactionService) enrich(ctx context.Context, row *sqlconfig.Transaction) (Transaction, error) {
	ledger, err := s.lookup.Ledger(ctx, row.LedgerID)
	if err != nil {
		return Transaction{}, err
	}
	categoryName, err := s.lookup.CategoryName(ctx, row.CategoryID)
	if err != nil {
		return Transaction{}, err
	}
	if categoryName == "" {
		categoryName = reporting.UncategorizedLabel
	}

	return Transaction{
		ID:           row.ID,
		LedgerID:     row.LedgerID,
		LedgerName:   ledger.Name,
		Currency:     ledger.Currency,
		CategoryID:   row.CategoryID,
		CategoryName: categoryName,
		Date:         row.Date,
		Description:  row.Description,
		Amount:       row.Amount,
		Type:         row.Type,
		CreatedAt:    row.CreatedAt,
	}, nil
}
