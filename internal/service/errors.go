package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/ledger-server/internal/export"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	// ErrNotFound also covers records owned by someone else.
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInvitationInvalid   = errors.New("invalid invitation code")
	ErrInvitationExhausted = errors.New("invitation code has no uses left")
	ErrInvitationExpired   = errors.New("invitation code has expired")
	ErrUnavailable         = errors.New("service temporarily unavailable")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// translateError maps storage, action, and reporting errors onto the
// service sentinels. Unknown errors pass through untouched.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sqlconfig.ErrNotFound), errors.Is(err, actions.ErrNotOwned):
		return ErrNotFound
	case errors.Is(err, sqlconfig.ErrDuplicate):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, sqlconfig.ErrUnavailable),
		errors.Is(err, operator.ErrStopped),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	case errors.Is(err, actions.ErrReadOnly):
		return fmt.Errorf("%w: %w", ErrForbidden, err)
	case errors.Is(err, actions.ErrInvitationInvalid):
		return ErrInvitationInvalid
	case errors.Is(err, actions.ErrInvitationExhausted):
		return ErrInvitationExhausted
	case errors.Is(err, actions.ErrInvitationExpired):
		return ErrInvitationExpired
	case errors.Is(err, actions.ErrEmailTaken):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, reporting.ErrInvalidFilter),
		errors.Is(err, reporting.ErrInvalidGranularity),
		errors.Is(err, reporting.ErrInvalidDate),
		errors.Is(err, reporting.ErrInvalidType),
		errors.Is(err, export.ErrInvalidFormat):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	default:
		return err
	}
}
