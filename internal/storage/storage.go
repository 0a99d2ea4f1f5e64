package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Storage is the read side of the database plus the entry point for write
// transactions.
type Storage struct {
	DB              *sql.DB
	Users           sqlconfig.IUserTable
	Ledgers         sqlconfig.ILedgerTable
	Categories      sqlconfig.ICategoryTable
	Transactions    sqlconfig.ITransactionTable
	InvitationCodes sqlconfig.IInvitationCodeTable

	bobDB   bob.DB
	timeout time.Duration
}

func NewStorage(env *config.Config) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	return NewStorageFromDB(db, env.StorageTimeout), nil
}

// NewStorageFromDB wraps an open pool; every table call is bounded by timeout.
func NewStorageFromDB(db *sql.DB, timeout time.Duration) *Storage {
	exec := bob.NewDB(db)
	return &Storage{
		DB:              db,
		Users:           sqlconfig.NewUsersTable(exec, timeout),
		Ledgers:         sqlconfig.NewLedgersTable(exec, timeout),
		Categories:      sqlconfig.NewCategoriesTable(exec, timeout),
		Transactions:    sqlconfig.NewTransactionsTable(exec, timeout),
		InvitationCodes: sqlconfig.NewInvitationCodesTable(exec, timeout),
		bobDB:           exec,
		timeout:         timeout,
	}
}

// Write opens a transaction. The caller must Commit or Rollback the Writer.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin: %w", sqlconfig.ErrUnavailable, err)
	}
	return NewWriter(tx, s.timeout), nil
}

// Ping checks the pool can reach the database.
func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.DB.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", sqlconfig.ErrUnavailable, err)
	}
	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
