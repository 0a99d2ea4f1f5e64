package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const (
	invitationCodePrefix   = "INVITE-"
	invitationCodeAttempts = 3
	maxInvitationUses      = 1000
)

// InvitationCode is the service view of an invitation code.
type InvitationCode struct {
	ID        uuid.UUID
	Code      string
	CreatedBy uuid.UUID
	UsesLeft  int
	ExpiresAt *time.Time
	UsedBy    []uuid.UUID
	CreatedAt time.Time
}

func invitationFromStorage(c *sqlconfig.InvitationCode) InvitationCode {
	view := InvitationCode{
		ID:        c.ID,
		Code:      c.Code,
		CreatedBy: c.CreatedBy,
		UsesLeft:  c.UsesLeft,
		UsedBy:    make([]uuid.UUID, 0, len(c.UsedBy)),
		CreatedAt: c.CreatedAt,
	}
	if c.ExpiresAt.Valid {
		expires := c.ExpiresAt.Time
		view.ExpiresAt = &expires
	}
	for _, raw := range c.UsedBy {
		if id, err := uuid.FromString(raw); err == nil {
			view.UsedBy = append(view.UsedBy, id)
		}
	}
	return view
}

// InvitationService lets administrators mint and review invitation codes.
type InvitationService struct {
	storage  *storage.Storage
	operator actionProcessor
	now      func() time.Time
	generate func() (string, error)
}

func NewInvitationService(store *storage.Storage, op actionProcessor) *InvitationService {
	return &InvitationService{
		storage:  store,
		operator: op,
		now:      time.Now,
		generate: generateInvitationCode,
	}
}

// generateInvitationCode returns INVITE- followed by 8 uppercase hex digits.
func generateInvitationCode() (string, error) {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate invitation code: %w", err)
	}
	return invitationCodePrefix + strings.ToUpper(hex.EncodeToString(b)), nil
}

// CreateInvitationCode mints a code. usesLeft defaults to 1.
func (s *InvitationService) CreateInvitationCode(ctx context.Context, p Principal, usesLeft *int, expiresAt *time.Time) (*InvitationCode, error) {
	if err := p.requireAdministrator(); err != nil {
		return nil, err
	}

	uses := 1
	if usesLeft != nil {
		uses = *usesLeft
	}
	if uses < 1 || uses > maxInvitationUses {
		return nil, validationError("usesLeft must be between 1 and %d", maxInvitationUses)
	}
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return nil, validationError("expiresAt must be in the future")
	}

	// A collision on 32 random bits is unlikely but possible.
	for attempt := 1; ; attempt++ {
		code, err := s.generate()
		if err != nil {
			return nil, err
		}

		action := &actions.CreateInvitationCode{
			CreatedBy: p.UserID,
			Code:      code,
			UsesLeft:  uses,
			ExpiresAt: expiresAt,
		}
		err = s.operator.Process(ctx, action)
		if errors.Is(err, sqlconfig.ErrDuplicate) && attempt < invitationCodeAttempts {
			continue
		}
		if err != nil {
			return nil, translateError(err)
		}

		view := invitationFromStorage(action.Created)
		return &view, nil
	}
}

// ListInvitationCodes returns the codes the caller minted, newest first.
func (s *InvitationService) ListInvitationCodes(ctx context.Context, p Principal) ([]InvitationCode, error) {
	if err := p.requireAdministrator(); err != nil {
		return nil, err
	}

	rows, err := s.storage.InvitationCodes.ListByCreator(ctx, p.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	codes := make([]InvitationCode, len(rows))
	for i, row := range rows {
		codes[i] = invitationFromStorage(row)
	}
	return codes, nil
}
