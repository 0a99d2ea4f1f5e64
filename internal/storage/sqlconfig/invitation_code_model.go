package sqlconfig

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
)

// InvitationCode represents an invitation_codes record.
type InvitationCode struct {
	ID        uuid.UUID      `db:"id"`
	Code      string         `db:"code"`
	CreatedBy uuid.UUID      `db:"created_by"`
	UsesLeft  int            `db:"uses_left"`
	ExpiresAt sql.NullTime   `db:"expires_at"`
	UsedBy    pq.StringArray `db:"used_by"`
	CreatedAt time.Time      `db:"created_at"`
}

// Redeemable reports whether the code can still be used at now.
func (c *InvitationCode) Redeemable(now time.Time) bool {
	return c.UsesLeft > 0 && !c.Expired(now)
}

func (c *InvitationCode) Expired(now time.Time) bool {
	return c.ExpiresAt.Valid && !c.ExpiresAt.Time.After(now)
}

// InvitationCodeCreate is the input for minting a code.
type InvitationCodeCreate struct {
	Code      string
	CreatedBy uuid.UUID
	UsesLeft  int
	ExpiresAt *time.Time
}

// IInvitationCodeTable defines the interface for invitation code storage operations.
//
//go:generate mockery --name IInvitationCodeTable --with-expecter --inpackage --filename mock_IInvitationCodeTable.go
type IInvitationCodeTable interface {
	FindByCode(ctx context.Context, code string) (*InvitationCode, error)
	Insert(ctx context.Context, create *InvitationCodeCreate) (*InvitationCode, error)
	ListByCreator(ctx context.Context, createdBy uuid.UUID) ([]*InvitationCode, error)
	Redeem(ctx context.Context, code string, userID uuid.UUID, now time.Time) (*InvitationCode, error)
}
