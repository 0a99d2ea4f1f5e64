package storage

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Writer exposes every table bound to a single database transaction.
type Writer struct {
	Users           sqlconfig.IUserTable
	Ledgers         sqlconfig.ILedgerTable
	Categories      sqlconfig.ICategoryTable
	Transactions    sqlconfig.ITransactionTable
	InvitationCodes sqlconfig.IInvitationCodeTable

	commit   func(context.Context) error
	rollback func(context.Context) error
}

func NewWriter(tx bob.Tx, timeout time.Duration) *Writer {
	return &Writer{
		Users:           sqlconfig.NewUsersTable(tx, timeout),
		Ledgers:         sqlconfig.NewLedgersTable(tx, timeout),
		Categories:      sqlconfig.NewCategoriesTable(tx, timeout),
		Transactions:    sqlconfig.NewTransactionsTable(tx, timeout),
		InvitationCodes: sqlconfig.NewInvitationCodesTable(tx, timeout),
		commit:          tx.Commit,
		rollback:        tx.Rollback,
	}
}

// OnFinish replaces how the writer ends its transaction. Used by tests that
// build a Writer from mock tables.
func (w *Writer) OnFinish(commit, rollback func(context.Context) error) *Writer {
	w.commit = commit
	w.rollback = rollback
	return w
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.commit(ctx)
}

// Rollback runs on a fresh context so a cancelled request still releases
// its transaction.
func (w *Writer) Rollback() error {
	return w.rollback(context.Background())
}
