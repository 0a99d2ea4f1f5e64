package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var (
	// ErrNotOwned is returned when a record exists but belongs to someone else.
	ErrNotOwned = errors.New("record not owned by requester")
	// ErrReadOnly is returned for writes against shared default categories.
	ErrReadOnly            = errors.New("record is read-only")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvitationInvalid   = errors.New("invitation code not found")
	ErrInvitationExhausted = errors.New("invitation code has no uses left")
	ErrInvitationExpired   = errors.New("invitation code has expired")
)

// IAction is a unit of work performed inside a single write transaction.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// ownedLedger locks the ledger and checks it belongs to userID.
func ownedLedger(ctx context.Context, writer *storage.Writer, userID, ledgerID uuid.UUID) (*sqlconfig.Ledger, error) {
	ledger, err := writer.Ledgers.FindByIDForUpdate(ctx, ledgerID)
	if err != nil {
		return nil, err
	}
	if ledger.UserID != userID {
		return nil, ErrNotOwned
	}
	return ledger, nil
}

// visibleCategory checks the category is a default or belongs to userID.
func visibleCategory(ctx context.Context, writer *storage.Writer, userID, categoryID uuid.UUID) (*sqlconfig.Category, error) {
	category, err := writer.Categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if !category.IsDefault() && category.UserID.UUID != userID {
		return nil, ErrNotOwned
	}
	return category, nil
}

// ownedCategory locks a user category for modification. Defaults are
// visible to everyone but read-only.
func ownedCategory(ctx context.Context, writer *storage.Writer, userID, categoryID uuid.UUID) (*sqlconfig.Category, error) {
	category, err := writer.Categories.FindByIDForUpdate(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.IsDefault() {
		return nil, ErrReadOnly
	}
	if category.UserID.UUID != userID {
		return nil, ErrNotOwned
	}
	return category, nil
}
