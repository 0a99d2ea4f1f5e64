package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const invitationCodesTableName = "invitation_codes"

var invitationCodeColumns = []any{"id", "code", "created_by", "uses_left", "expires_at", "used_by", "created_at"}

var _ IInvitationCodeTable = (*InvitationCodesTable)(nil)

// InvitationCodesTable provides access to the invitation_codes table.
type InvitationCodesTable struct {
	exec    bob.Executor
	timeout time.Duration
}

func NewInvitationCodesTable(exec bob.Executor, timeout time.Duration) *InvitationCodesTable {
	return &InvitationCodesTable{exec: exec, timeout: timeout}
}

func (t *InvitationCodesTable) FindByCode(ctx context.Context, code string) (*InvitationCode, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(invitationCodeColumns...),
		sm.From(invitationCodesTableName),
		sm.Where(psql.Quote("code").EQ(psql.Arg(code))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[InvitationCode]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *InvitationCodesTable) Insert(ctx context.Context, create *InvitationCodeCreate) (*InvitationCode, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	var expiresAt any
	if create.ExpiresAt != nil {
		expiresAt = *create.ExpiresAt
	}

	q := psql.Insert(
		im.Into(invitationCodesTableName, "code", "created_by", "uses_left", "expires_at"),
		im.Values(
			psql.Arg(create.Code),
			psql.Arg(create.CreatedBy),
			psql.Arg(create.UsesLeft),
			psql.Arg(expiresAt),
		),
		im.Returning(invitationCodeColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[InvitationCode]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// ListByCreator returns the codes an administrator minted, newest first.
func (t *InvitationCodesTable) ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]*InvitationCode, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Select(
		sm.Columns(invitationCodeColumns...),
		sm.From(invitationCodesTableName),
		sm.Where(psql.Quote("created_by").EQ(psql.Arg(createdBy))),
		sm.OrderBy("created_at").Desc(),
		sm.OrderBy("id").Desc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[InvitationCode]())
	if err != nil {
		return nil, mapError(err)
	}
	return pointers(rows), nil
}

// Redeem consumes one use of code for userID. The check and the decrement are
// a single conditional UPDATE, so concurrent redemptions can never drive
// uses_left below zero. ErrNotFound means no redeemable row matched; callers
// re-read the code to learn why.
func (t *InvitationCodesTable) Redeem(ctx context.Context, code string, userID uuid.UUID, now time.Time) (*InvitationCode, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	q := psql.Update(
		um.Table(invitationCodesTableName),
		um.SetCol("uses_left").To(psql.Raw("uses_left - 1")),
		um.SetCol("used_by").To(psql.Raw("array_append(used_by, ?::uuid)", userID)),
		um.Where(psql.Quote("code").EQ(psql.Arg(code))),
		um.Where(psql.Quote("uses_left").GT(psql.Arg(0))),
		um.Where(psql.Or(
			psql.Quote("expires_at").IsNull(),
			psql.Quote("expires_at").GT(psql.Arg(now)),
		)),
		um.Returning(invitationCodeColumns...),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[InvitationCode]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}
