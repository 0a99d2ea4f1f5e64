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

const categoriesTableName = "categories"

var categoryColumns = []any{"id", "user_id", "name", "type", "created_at"}

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec    bob.Executor
	timeout time.Duration
}

func NewCategoriesTable(exec bob.Executor, timeout time.Duration) *CategoriesTable {
	return &CategoriesTable{exec: exec, timeout: timeout}
}

func (t *CategoriesTable) FindByID(ctx context.Context, id uuid.UUID) (*Category, error) {
	return t.find(ctx, id, false)
}

func (t *CategoriesTable) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Category, error) {
	return t.find(ctx, id, true)
}

func (t *CategoriesTable) find(ctx context.Context, id uuid.UUID, forUpdate bool) (*Category, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// ListVisible returns the defaults plus the user's own categories, ordered by
// type then name.
func (t *CategoriesTable) ListVisible(ctx context.Context, userID uuid.UUID) ([]*Category, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTableName),
		sm.Where(psql.Or(
			psql.Quote("user_id").IsNull(),
			psql.Quote("user_id").EQ(psql.Arg(userID)),
		)),
		sm.OrderBy("type").Asc(),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return pointers(rows), nil
}

func (t *CategoriesTable) CountDefaults(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(categoriesTableName),
		sm.Where(psql.Quote("user_id").IsNull()),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Insert(
		im.Into(categoriesTableName, "user_id", "name", "type"),
		im.Values(
			psql.Arg(create.UserID),
			psql.Arg(create.Name),
			psql.Arg(create.Type),
		),
		im.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *CategoriesTable) Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if name, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(name))
	}
	if typ, ok := update.Type.Get(); ok {
		sets = append(sets, um.SetCol("type").ToArg(typ))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	mods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(categoriesTableName)}, sets...)
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Delete removes the category. Transactions keep the dangling id and are
// reported as uncategorised.
func (t *CategoriesTable) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Delete(
		dm.From(categoriesTableName),
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
