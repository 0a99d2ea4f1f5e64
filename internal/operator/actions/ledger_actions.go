package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateLedger struct {
	Create sqlconfig.LedgerCreate

	Created *sqlconfig.Ledger
}

func (a *CreateLedger) Perform(ctx context.Context, writer *storage.Writer) error {
	ledger, err := writer.Ledgers.Insert(ctx, &a.Create)
	if err != nil {
		return err
	}
	a.Created = ledger
	return nil
}

type UpdateLedger struct {
	UserID   uuid.UUID
	LedgerID uuid.UUID
	Update   sqlconfig.LedgerUpdate

	Updated *sqlconfig.Ledger
}

func (a *UpdateLedger) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedLedger(ctx, writer, a.UserID, a.LedgerID); err != nil {
		return err
	}

	ledger, err := writer.Ledgers.Update(ctx, a.LedgerID, &a.Update)
	if err != nil {
		return err
	}
	a.Updated = ledger
	return nil
}

// DeleteLedger removes a ledger together with its transactions.
type DeleteLedger struct {
	UserID   uuid.UUID
	LedgerID uuid.UUID

	DeletedTransactions int64
}

func (a *DeleteLedger) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedLedger(ctx, writer, a.UserID, a.LedgerID); err != nil {
		return err
	}

	deleted, err := writer.Transactions.DeleteByLedger(ctx, a.LedgerID)
	if err != nil {
		return err
	}
	if err := writer.Ledgers.Delete(ctx, a.LedgerID); err != nil {
		return err
	}

	a.DeletedTransactions = deleted
	return nil
}
