package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const ledgersTableName = "ledgers"

var ledgerColumns = []any{"id", "user_id", "name", "description", "currency", "created_at"}

var _ ILedgerTable = (*LedgersTable)(nil)

// LedgersTable provides access to the ledgers table.
type LedgersTable struct {
	exec    bob.Executor
	timeout time.Duration
}

func NewLedgersTable(exec bob.Executor, timeout time.Duration) *LedgersTable {
	return &LedgersTable{exec: exec, timeout: timeout}
}

func (t *LedgersTable) FindByID(ctx context.Context, id uuid.UUID) (*Ledger, error) {
	return t.find(ctx, id, false)
}

// FindByIDForUpdate locks the row until the surrounding transaction ends.
func (t *LedgersTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Ledger, error) {
	return t.find(ctx, id, true)
}

func (t *LedgersTable) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*Ledger, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(ledgerColumns...),
		sm.From(ledgersTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Ledger]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *LedgersTable) Insert(ctx context.Context, create *LedgerCreate) (*Ledger, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Insert(
		im.Into(ledgersTableName, "user_id", "name", "description", "currency"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(create.Description),
			psql.Arg(create.Currency),
		),
		im.Returning(ledgerColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Ledger]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// ListByUser returns the user's ledgers, newest first.
func (t *LedgersTable) ListByUser(ctx context.Context, userID uuid.UUID) ([]*Ledger, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(ledgerColumns...),
		sm.From(ledgersTableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Ledger]())
	if err != nil {
		return nil, mapError(err)
	}
	return pointers(rows), nil
}

func (t *LedgersTable) Update(ctx context.Context, id uuid.UUID, update *LedgerUpdate) (*Ledger, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if name, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(name))
	}
	if description, ok := update.Description.Get(); ok {
		sets = append(sets, um.SetCol("description").ToArg(description))
	}
	if currency, ok := update.Currency.Get(); ok {
		sets = append(sets, um.SetCol("currency").ToArg(currency))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	mods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(ledgersTableName)}, sets...)
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(ledgerColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Ledger]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Delete removes the ledger; its transactions go with it through the foreign key.
func (t *LedgersTable) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Delete(
		dm.From(ledgersTableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return mapError(err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrNotFound
	}
	return nil
}
