package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type tables struct {
	users        *sqlconfig.MockIUserTable
	ledgers      *sqlconfig.MockILedgerTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
	codes        *sqlconfig.MockIInvitationCodeTable
}

// newTestStore backs both the read side and the write transactions with the
// same mocks.
func newTestStore(t *testing.T) (*storage.Storage, *fakeOperator, tables) {
	t.Helper()
	m := tables{
		users:        sqlconfig.NewMockIUserTable(t),
		ledgers:      sqlconfig.NewMockILedgerTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
		codes:        sqlconfig.NewMockIInvitationCodeTable(t),
	}
	store := &storage.Storage{
		Users:           m.users,
		Ledgers:         m.ledgers,
		Categories:      m.categories,
		Transactions:    m.transactions,
		InvitationCodes: m.codes,
	}
	op := &fakeOperator{writer: &storage.Writer{
		Users:           m.users,
		Ledgers:         m.ledgers,
		Categories:      m.categories,
		Transactions:    m.transactions,
		InvitationCodes: m.codes,
	}}
	return store, op, m
}

// fakeOperator performs actions inline against the mock writer.
type fakeOperator struct {
	writer    *storage.Writer
	processed []actions.IAction
}

func (f *fakeOperator) Process(ctx context.Context, action actions.IAction) error {
	f.processed = append(f.processed, action)
	return action.Perform(ctx, f.writer)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type fakeTokens struct{}

func (fakeTokens) Issue(userID uuid.UUID) (string, error) {
	return fmt.Sprintf("token-%s", userID), nil
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func ordinary() Principal {
	return Principal{UserID: newID(), Email: "user@example.com", Role: RoleOrdinary}
}

func administrator() Principal {
	return Principal{UserID: newID(), Email: "admin@example.com", Role: RoleAdministrator}
}

func newTestLookup(store *storage.Storage) *Lookup {
	return NewLookup(store, 16, time.Minute)
}

func mustDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
