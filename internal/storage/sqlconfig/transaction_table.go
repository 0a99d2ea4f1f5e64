package sqlconfig

import (
	"context"
	"strings"
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

	"github.com/carson-networks/ledger-server/internal/reporting"
)

const transactionsTableName = "transactions"

var transactionColumns = []any{
	"id", "user_id", "ledger_id", "category_id", "date",
	"description", "amount", "type", "created_at",
}

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	exec    bob.Executor
	timeout time.Duration
}

func NewTransactionsTable(exec bob.Executor, timeout time.Duration) *TransactionsTable {
	return &TransactionsTable{exec: exec, timeout: timeout}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return t.find(ctx, id, false)
}

func (t *TransactionsTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return t.find(ctx, id, true)
}

func (t *TransactionsTable) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*Transaction, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Insert creates a new transaction and returns the stored row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Insert(
		im.Into(transactionsTableName, "user_id", "ledger_id", "category_id", "date", "description", "amount", "type"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.LedgerID),
			psql.Arg(create.CategoryID),
			psql.Arg(dateArg(create.Date)),
			psql.Arg(create.Description),
			psql.Arg(create.Amount),
			psql.Arg(create.Type),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// List returns transactions matching the filter, newest date first. When
// Limit is set one extra row is fetched so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	if filter.IsEmptyRange() {
		return []*Transaction{}, nil
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTableName),
	}
	for _, where := range filterWheres(filter) {
		queryMods = append(queryMods, sm.Where(where))
	}
	if filter.Limit > 0 {
		queryMods = append(queryMods, sm.Limit(filter.Limit+1))
	}
	if filter.Offset > 0 {
		queryMods = append(queryMods, sm.Offset(filter.Offset))
	}
	queryMods = append(queryMods,
		sm.OrderBy("date").Desc(),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return pointers(rows), nil
}

// filterWheres is the SQL form of reporting.Filter.Matches.
func filterWheres(filter *TransactionFilter) []bob.Expression {
	wheres := []bob.Expression{
		psql.Quote("user_id").EQ(psql.Arg(filter.UserID)),
	}
	if filter.LedgerID != nil {
		wheres = append(wheres, psql.Quote("ledger_id").EQ(psql.Arg(*filter.LedgerID)))
	}
	if filter.CategoryID != nil {
		wheres = append(wheres, psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID)))
	}
	if filter.Type != nil {
		wheres = append(wheres, psql.Quote("type").EQ(psql.Arg(*filter.Type)))
	}
	if filter.Description != "" {
		wheres = append(wheres, psql.Raw("description ILIKE ?", likePattern(filter.Description)))
	}
	if filter.StartDate != nil {
		wheres = append(wheres, psql.Quote("date").GTE(psql.Arg(dateArg(*filter.StartDate))))
	}
	if filter.EndDate != nil {
		wheres = append(wheres, psql.Quote("date").LTE(psql.Arg(dateArg(*filter.EndDate))))
	}
	if filter.MaxCreationTime != nil {
		wheres = append(wheres, psql.Quote("created_at").LTE(psql.Arg(*filter.MaxCreationTime)))
	}
	return wheres
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern turns a literal substring into an ILIKE pattern.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// dateArg sends calendar dates as text so postgres compares them as DATE
// regardless of the session time zone.
func dateArg(t time.Time) string {
	return reporting.CalendarDate(t).Format(reporting.DateLayout)
}

func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) (*Transaction, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if ledgerID, ok := update.LedgerID.Get(); ok {
		sets = append(sets, um.SetCol("ledger_id").ToArg(ledgerID))
	}
	if categoryID, ok := update.CategoryID.Get(); ok {
		sets = append(sets, um.SetCol("category_id").ToArg(categoryID))
	}
	if date, ok := update.Date.Get(); ok {
		sets = append(sets, um.SetCol("date").ToArg(dateArg(date)))
	}
	if description, ok := update.Description.Get(); ok {
		sets = append(sets, um.SetCol("description").ToArg(description))
	}
	if amount, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(amount))
	}
	if typ, ok := update.Type.Get(); ok {
		sets = append(sets, um.SetCol("type").ToArg(typ))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	mods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(transactionsTableName)}, sets...)
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Delete(
		dm.From(transactionsTableName),
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

// DeleteByLedger removes every transaction in a ledger and returns how many
// were deleted.
func (t *TransactionsTable) DeleteByLedger(ctx context.Context, ledgerID uuid.UUID) (int64, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Delete(
		dm.From(transactionsTableName),
		dm.Where(psql.Quote("ledger_id").EQ(psql.Arg(ledgerID))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return 0, mapError(err)
	}
	return result.RowsAffected()
}
