package actions

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// RegisterUser creates an ordinary user and consumes one use of an
// invitation code. Both happen in the same transaction, so a failed
// redemption leaves no user behind.
type RegisterUser struct {
	Email          string
	PasswordHash   string
	InvitationCode string
	Now            time.Time

	Created *sqlconfig.User
}

func (a *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	code, err := writer.InvitationCodes.FindByCode(ctx, a.InvitationCode)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrInvitationInvalid
	}
	if err != nil {
		return err
	}
	if code.Expired(a.Now) {
		return ErrInvitationExpired
	}
	if code.UsesLeft <= 0 {
		return ErrInvitationExhausted
	}

	_, err = writer.Users.FindByEmail(ctx, a.Email)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, sqlconfig.ErrNotFound) {
		return err
	}

	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         sqlconfig.UserRoleOrdinary,
	})
	if errors.Is(err, sqlconfig.ErrDuplicate) {
		return ErrEmailTaken
	}
	if err != nil {
		return err
	}

	// The conditional decrement is the source of truth; losing a race to
	// another registration surfaces here.
	_, err = writer.InvitationCodes.Redeem(ctx, a.InvitationCode, user.ID, a.Now)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return ErrInvitationExhausted
	}
	if err != nil {
		return err
	}

	a.Created = user
	return nil
}

// BootstrapAdministrator creates the first administrator when no users exist.
// Created stays nil when the table is already populated.
type BootstrapAdministrator struct {
	Email        string
	PasswordHash string

	Created *sqlconfig.User
}

func (a *BootstrapAdministrator) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	user, err := writer.Users.Insert(ctx, &sqlconfig.UserCreate{
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         sqlconfig.UserRoleAdministrator,
	})
	if err != nil {
		return err
	}
	a.Created = user
	return nil
}

type UpdateUserRole struct {
	UserID uuid.UUID
	Role   sqlconfig.UserRole

	Updated *sqlconfig.User
}

func (a *UpdateUserRole) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.UpdateRole(ctx, a.UserID, a.Role)
	if err != nil {
		return err
	}
	a.Updated = user
	return nil
}

type UpdateProfile struct {
	UserID uuid.UUID
	Update sqlconfig.UserUpdate

	Updated *sqlconfig.User
}

func (a *UpdateProfile) Perform(ctx context.Context, writer *storage.Writer) error {
	user, err := writer.Users.UpdateProfile(ctx, a.UserID, &a.Update)
	if err != nil {
		return err
	}
	a.Updated = user
	return nil
}
