package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// CreateTransaction records a transaction in one of the user's ledgers. The
// stored amount takes its sign from Type whatever the sign of Magnitude.
type CreateTransaction struct {
	UserID      uuid.UUID
	LedgerID    uuid.UUID
	CategoryID  uuid.UUID
	Date        time.Time
	Description string
	Magnitude   decimal.Decimal
	Type        reporting.Type

	Created *sqlconfig.Transaction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedLedger(ctx, writer, t.UserID, t.LedgerID); err != nil {
		return err
	}
	if _, err := visibleCategory(ctx, writer, t.UserID, t.CategoryID); err != nil {
		return err
	}

	storageCreate := &sqlconfig.TransactionCreate{
		UserID:      t.UserID,
		LedgerID:    t.LedgerID,
		CategoryID:  t.CategoryID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      reporting.NormalizeAmount(t.Type, t.Magnitude),
		Type:        t.Type,
	}
	created, err := writer.Transactions.Insert(ctx, storageCreate)
	if err != nil {
		return err
	}

	t.Created = created
	return nil
}
