package actions

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// UpdateTransaction applies a partial update. Whenever the type or the
// amount changes, the stored amount is re-derived so its sign matches the
// effective type.
type UpdateTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	LedgerID      *uuid.UUID
	CategoryID    *uuid.UUID
	Date          *time.Time
	Description   *string
	AmountChange  reporting.AmountChange

	Updated *sqlconfig.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Transactions.FindByIDForUpdate(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if current.UserID != a.UserID {
		return ErrNotOwned
	}

	update := sqlconfig.TransactionUpdate{}
	if a.LedgerID != nil {
		if _, err := ownedLedger(ctx, writer, a.UserID, *a.LedgerID); err != nil {
			return err
		}
		update.LedgerID = omit.From(*a.LedgerID)
	}
	if a.CategoryID != nil {
		if _, err := visibleCategory(ctx, writer, a.UserID, *a.CategoryID); err != nil {
			return err
		}
		update.CategoryID = omit.From(*a.CategoryID)
	}
	if a.Date != nil {
		update.Date = omit.From(*a.Date)
	}
	if a.Description != nil {
		update.Description = omit.From(*a.Description)
	}
	if a.AmountChange.Type != nil || a.AmountChange.Magnitude != nil {
		typ, amount := reporting.ResolveAmount(current.Type, current.Amount, a.AmountChange)
		update.Type = omit.From(typ)
		update.Amount = omit.From(amount)
	}

	updated, err := writer.Transactions.Update(ctx, a.TransactionID, &update)
	if err != nil {
		return err
	}
	a.Updated = updated
	return nil
}

type DeleteTransaction struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Transactions.FindByIDForUpdate(ctx, a.TransactionID)
	if err != nil {
		return err
	}
	if current.UserID != a.UserID {
		return ErrNotOwned
	}
	return writer.Transactions.Delete(ctx, a.TransactionID)
}
