package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type tokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// Options carries the settings services need from configuration.
type Options struct {
	BaseCurrency    string
	LookupCacheSize int
	LookupCacheTTL  time.Duration
}

// Service holds all business logic services.
type Service struct {
	Auth         *AuthService
	Users        *UserService
	Ledgers      *LedgerService
	Categories   *CategoryService
	Transactions *TransactionService
	Invitations  *InvitationService
	Reports      *ReportService
	Exports      *ExportService
	Principals   *PrincipalLoader
	Lookup       *Lookup

	operator actionProcessor
	hasher   passwordHasher
}

// NewService wires every service against one storage pool and write queue.
func NewService(store *storage.Storage, op actionProcessor, tokens tokenIssuer, hasher passwordHasher, opts Options) *Service {
	lookup := NewLookup(store, opts.LookupCacheSize, opts.LookupCacheTTL)
	return &Service{
		Auth:         NewAuthService(store, op, tokens, hasher),
		Users:        NewUserService(store, op, hasher),
		Ledgers:      NewLedgerService(store, op, lookup, opts.BaseCurrency),
		Categories:   NewCategoryService(store, op, lookup),
		Transactions: NewTransactionService(store, op, lookup),
		Invitations:  NewInvitationService(store, op),
		Reports:      NewReportService(store, lookup),
		Exports:      NewExportService(store, lookup),
		Principals:   NewPrincipalLoader(store.Users),
		Lookup:       lookup,
		operator:     op,
		hasher:       hasher,
	}
}

// Bootstrap seeds the default categories and, when credentials are given
// and no user exists yet, the first administrator. Safe to run on every
// start.
func (s *Service) Bootstrap(ctx context.Context, adminEmail, adminPassword string) (*BootstrapResult, error) {
	seed := &actions.SeedDefaultCategories{}
	if err := s.operator.Process(ctx, seed); err != nil {
		return nil, translateError(err)
	}
	result := &BootstrapResult{SeededCategories: seed.Seeded}

	if adminEmail == "" {
		return result, nil
	}

	email, err := normalizeEmail(adminEmail)
	if err != nil {
		return nil, err
	}
	hash, err := s.hasher.Hash(adminPassword)
	if err != nil {
		return nil, err
	}

	bootstrap := &actions.BootstrapAdministrator{Email: email, PasswordHash: hash}
	if err := s.operator.Process(ctx, bootstrap); err != nil {
		return nil, translateError(err)
	}
	if bootstrap.Created != nil {
		result.Administrator = &bootstrap.Created.ID
	}
	return result, nil
}

type BootstrapResult struct {
	SeededCategories int
	Administrator    *uuid.UUID
}
