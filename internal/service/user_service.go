package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

const maxNicknameLength = 30

// UserService handles profiles and the administrator user surface.
type UserService struct {
	storage  *storage.Storage
	operator actionProcessor
	hasher   passwordHasher
}

func NewUserService(store *storage.Storage, op actionProcessor, hasher passwordHasher) *UserService {
	return &UserService{storage: store, operator: op, hasher: hasher}
}

func (s *UserService) Profile(ctx context.Context, p Principal) (*User, error) {
	user, err := s.storage.Users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	view := userFromStorage(user)
	return &view, nil
}

// ProfileUpdate changes only the non-nil fields.
type ProfileUpdate struct {
	Nickname *string
	Password *string
}

func (s *UserService) UpdateProfile(ctx context.Context, p Principal, req ProfileUpdate) (*User, error) {
	update := sqlconfig.UserUpdate{}
	if req.Nickname != nil {
		nickname, err := checkLength("nickname", *req.Nickname, 0, maxNicknameLength)
		if err != nil {
			return nil, err
		}
		update.Nickname = omit.From(nickname)
	}
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = omit.From(hash)
	}
	if !update.Nickname.IsValue() && !update.PasswordHash.IsValue() {
		return s.Profile(ctx, p)
	}

	action := &actions.UpdateProfile{UserID: p.UserID, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	view := userFromStorage(action.Updated)
	return &view, nil
}

// ListUsers returns every user. Administrator only.
func (s *UserService) ListUsers(ctx context.Context, p Principal) ([]User, error) {
	if err := p.requireAdministrator(); err != nil {
		return nil, err
	}

	rows, err := s.storage.Users.List(ctx)
	if err != nil {
		return nil, translateError(err)
	}

	users := make([]User, len(rows))
	for i, row := range rows {
		users[i] = userFromStorage(row)
	}
	return users, nil
}

// UpdateRole changes another user's role. Administrators cannot change
// their own role, which keeps at least one administrator in place.
func (s *UserService) UpdateRole(ctx context.Context, p Principal, userID uuid.UUID, roleName string) (*User, error) {
	if err := p.requireAdministrator(); err != nil {
		return nil, err
	}
	role, err := ParseRole(roleName)
	if err != nil {
		return nil, err
	}
	if userID == p.UserID {
		return nil, validationError("administrators cannot change their own role")
	}

	action := &actions.UpdateUserRole{UserID: userID, Role: roleToStorage(role)}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	view := userFromStorage(action.Updated)
	return &view, nil
}
