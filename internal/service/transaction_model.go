package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/reporting"
)

// Transaction represents a transaction in the service layer, enriched with
// the names of its ledger and category.
type Transaction struct {
	ID           uuid.UUID
	LedgerID     uuid.UUID
	LedgerName   string
	Currency     string
	CategoryID   uuid.UUID
	CategoryName string
	Date         time.Time
	Description  string
	Amount       decimal.Decimal
	Type         reporting.Type
	CreatedAt    time.Time
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionCreateRequest carries a new transaction. Amount is a magnitude;
// its sign is taken from Type.
type TransactionCreateRequest struct {
	LedgerID    uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
}

// TransactionUpdateRequest changes only the non-nil fields.
type TransactionUpdateRequest struct {
	LedgerID    *uuid.UUID
	CategoryID  *uuid.UUID
	Date        *time.Time
	Description *string
	Amount      *decimal.Decimal
	Type        *string
}
