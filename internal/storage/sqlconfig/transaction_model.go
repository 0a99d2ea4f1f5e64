package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/reporting"
)

// Transaction represents a transaction record. Amount is signed: negative for
// expenses.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	LedgerID    uuid.UUID       `db:"ledger_id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Type        reporting.Type  `db:"type"`
	CreatedAt   time.Time       `db:"created_at"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	UserID      uuid.UUID
	LedgerID    uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        reporting.Type
}

// TransactionUpdate applies only the fields that are set.
type TransactionUpdate struct {
	LedgerID    omit.Val[uuid.UUID]
	CategoryID  omit.Val[uuid.UUID]
	Date        omit.Val[time.Time]
	Description omit.Val[string]
	Amount      omit.Val[decimal.Decimal]
	Type        omit.Val[reporting.Type]
}

// TransactionFilter specifies filters for listing transactions. A zero Limit
// returns every match.
type TransactionFilter struct {
	reporting.Filter
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --with-expecter --inpackage --filename mock_ITransactionTable.go
type ITransactionTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByLedger(ctx context.Context, ledgerID uuid.UUID) (int64, error)
}
