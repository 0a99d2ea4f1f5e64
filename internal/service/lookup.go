package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/cache"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// LedgerInfo is the display data attached to a ledger id.
type LedgerInfo struct {
	Name     string
	Currency string
}

// Lookup resolves category and ledger ids to display attributes. Entries are
// cached until they expire or a mutation invalidates them.
type Lookup struct {
	store      *storage.Storage
	categories *cache.LRUCache[string]
	ledgers    *cache.LRUCache[LedgerInfo]
}

func NewLookup(store *storage.Storage, size int, ttl time.Duration) *Lookup {
	return &Lookup{
		store:      store,
		categories: cache.NewLRUCache[string](size, ttl),
		ledgers:    cache.NewLRUCache[LedgerInfo](size, ttl),
	}
}

// CategoryName returns "" for a category that no longer exists.
func (l *Lookup) CategoryName(ctx context.Context, id uuid.UUID) (string, error) {
	key := id.String()
	if name, ok := l.categories.Get(key); ok {
		return name, nil
	}

	category, err := l.store.Categories.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", translateError(err)
	}

	l.categories.Set(key, category.Name)
	return category.Name, nil
}

// Ledger returns the zero LedgerInfo for a ledger that no longer exists.
func (l *Lookup) Ledger(ctx context.Context, id uuid.UUID) (LedgerInfo, error) {
	key := id.String()
	if info, ok := l.ledgers.Get(key); ok {
		return info, nil
	}

	ledger, err := l.store.Ledgers.FindByID(ctx, id)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return LedgerInfo{}, nil
	}
	if err != nil {
		return LedgerInfo{}, translateError(err)
	}

	info := LedgerInfo{Name: ledger.Name, Currency: ledger.Currency}
	l.ledgers.Set(key, info)
	return info, nil
}

func (l *Lookup) InvalidateCategory(id uuid.UUID) {
	l.categories.Delete(id.String())
}

func (l *Lookup) InvalidateLedger(id uuid.UUID) {
	l.ledgers.Delete(id.String())
}

func (l *Lookup) Flush() {
	l.categories.Flush()
	l.ledgers.Flush()
}

// Caches exposes the underlying caches for the expiry janitor.
func (l *Lookup) Caches() []cache.Cleaner {
	return []cache.Cleaner{l.categories, l.ledgers}
}
