package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

type CreateInvitationCode struct {
	CreatedBy uuid.UUID
	Code      string
	UsesLeft  int
	ExpiresAt *time.Time

	Created *sqlconfig.InvitationCode
}

func (a *CreateInvitationCode) Perform(ctx context.Context, writer *storage.Writer) error {
	code, err := writer.InvitationCodes.Insert(ctx, &sqlconfig.InvitationCodeCreate{
		Code:      a.Code,
		CreatedBy: a.CreatedBy,
		UsesLeft:  a.UsesLeft,
		ExpiresAt: a.ExpiresAt,
	})
	if err != nil {
		return err
	}
	a.Created = code
	return nil
}
