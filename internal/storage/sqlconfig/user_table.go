package sqlconfig

import (
	"context"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const usersTableName = "users"

var userColumns = []any{"id", "email", "password_hash", "nickname", "role", "created_at"}

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides access to the users table.
type UsersTable struct {
	exec    bob.Executor
	timeout time.Duration
}

func NewUsersTable(exec bob.Executor, timeout time.Duration) *UsersTable {
	return &UsersTable{exec: exec, timeout: timeout}
}

func (t *UsersTable) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByEmail matches case-insensitively; emails are stored lower-cased.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findOne(ctx, sm.Where(psql.Quote("email").EQ(psql.Arg(strings.ToLower(email)))))
}

func (t *UsersTable) findOne(ctx context.Context, where bob.Mod[*dialect.SelectQuery]) (*User, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		where,
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *UsersTable) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Insert(
		im.Into(usersTableName, "email", "password_hash", "nickname", "role"),
		im.Values(
			psql.Arg(strings.ToLower(create.Email)),
			psql.Arg(create.PasswordHash),
			psql.Arg(create.Nickname),
			psql.Arg(create.Role),
		),
		im.Returning(userColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// List returns every user, oldest first.
func (t *UsersTable) List(ctx context.Context) ([]*User, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(userColumns...),
		sm.From(usersTableName),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, mapError(err)
	}
	return pointers(rows), nil
}

func (t *UsersTable) Count(ctx context.Context) (int64, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(psql.Raw("count(*)")),
		sm.From(usersTableName),
	)
	count, err := bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

func (t *UsersTable) UpdateRole(ctx context.Context, id uuid.UUID, role UserRole) (*User, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Update(
		um.Table(usersTableName),
		um.SetCol("role").ToArg(role),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(userColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// UpdateProfile applies only the fields that are set. With nothing set it
// returns the current record.
func (t *UsersTable) UpdateProfile(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error) {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if nickname, ok := update.Nickname.Get(); ok {
		sets = append(sets, um.SetCol("nickname").ToArg(nickname))
	}
	if hash, ok := update.PasswordHash.Get(); ok {
		sets = append(sets, um.SetCol("password_hash").ToArg(hash))
	}
	if len(sets) == 0 {
		return t.FindByID(ctx, id)
	}

	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	mods := append([]bob.Mod[*dialect.UpdateQuery]{um.Table(usersTableName)}, sets...)
	mods = append(mods,
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(userColumns...),
	)
	row, err := bob.One(ctx, t.exec, psql.Update(mods...), scan.StructMapper[User]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}
