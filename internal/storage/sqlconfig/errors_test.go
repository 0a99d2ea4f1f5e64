package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	assert.Nil(t, mapError(nil))
	assert.True(t, errors.Is(mapError(sql.ErrNoRows), ErrNotFound))
	assert.True(t, errors.Is(mapError(fmt.Errorf("scan: %w", sql.ErrNoRows)), ErrNotFound))

	dup := mapError(&pq.Error{Code: "23505", Constraint: "categories_user_name_key"})
	assert.True(t, errors.Is(dup, ErrDuplicate))
	assert.Contains(t, dup.Error(), "categories_user_name_key")

	timeout := mapError(context.DeadlineExceeded)
	assert.True(t, errors.Is(timeout, ErrUnavailable))
	assert.True(t, errors.Is(timeout, context.DeadlineExceeded))

	other := errors.New("syntax error")
	assert.Equal(t, other, mapError(other))
	assert.False(t, errors.Is(mapError(&pq.Error{Code: "23514"}), ErrDuplicate))
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := withTimeout(context.Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	assert.False(t, ok)

	ctx, cancel = withTimeout(context.Background(), time.Second)
	defer cancel()
	_, ok = ctx.Deadline()
	assert.True(t, ok)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%coffee%", likePattern("coffee"))
	assert.Equal(t, `%100\%%`, likePattern("100%"))
	assert.Equal(t, `%a\_b%`, likePattern("a_b"))
	assert.Equal(t, `%c:\\d%`, likePattern(`c:\d`))
}

func TestDateArg(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	assert.Equal(t, "2024-03-01", dateArg(time.Date(2024, 3, 1, 1, 0, 0, 0, loc)))
}

func TestInvitationCode_Redeemable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	open := &InvitationCode{UsesLeft: 1}
	assert.True(t, open.Redeemable(now))

	exhausted := &InvitationCode{UsesLeft: 0}
	assert.False(t, exhausted.Redeemable(now))

	expired := &InvitationCode{UsesLeft: 3, ExpiresAt: sql.NullTime{Time: now.Add(-time.Minute), Valid: true}}
	assert.True(t, expired.Expired(now))
	assert.False(t, expired.Redeemable(now))

	future := &InvitationCode{UsesLeft: 3, ExpiresAt: sql.NullTime{Time: now.Add(time.Minute), Valid: true}}
	assert.True(t, future.Redeemable(now))
}
