package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Ledger represents a ledger record.
type Ledger struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Currency    string    `db:"currency"`
	CreatedAt   time.Time `db:"created_at"`
}

// LedgerCreate is the input for creating a new ledger.
type LedgerCreate struct {
	UserID      uuid.UUID
	Name        string
	Description string
	Currency    string
}

// LedgerUpdate applies only the fields that are set.
type LedgerUpdate struct {
	Name        omit.Val[string]
	Description omit.Val[string]
	Currency    omit.Val[string]
}

// ILedgerTable defines the interface for ledger storage operations.
//
//go:generate mockery --name ILedgerTable --with-expecter --inpackage --filename mock_ILedgerTable.go
type ILedgerTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Ledger, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Ledger, error)
	Insert(ctx context.Context, create *LedgerCreate) (*Ledger, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*Ledger, error)
	Update(ctx context.Context, id uuid.UUID, update *LedgerUpdate) (*Ledger, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
