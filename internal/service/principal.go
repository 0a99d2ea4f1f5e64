package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Role is a user's authorization level.
type Role int8

const (
	RoleOrdinary Role = iota
	RoleAdministrator
)

// Wire names for roles.
const (
	RoleNameOrdinary      = "user"
	RoleNameAdministrator = "admin"
)

func ParseRole(s string) (Role, error) {
	switch s {
	case RoleNameOrdinary:
		return RoleOrdinary, nil
	case RoleNameAdministrator:
		return RoleAdministrator, nil
	default:
		return 0, fmt.Errorf("%w: role must be %q or %q", ErrValidation, RoleNameOrdinary, RoleNameAdministrator)
	}
}

func (r Role) String() string {
	switch r {
	case RoleOrdinary:
		return RoleNameOrdinary
	case RoleAdministrator:
		return RoleNameAdministrator
	default:
		return fmt.Sprintf("Role(%d)", int8(r))
	}
}

// CanAdminister reports whether the role may use the administrator surface.
func (r Role) CanAdminister() bool {
	switch r {
	case RoleAdministrator:
		return true
	case RoleOrdinary:
		return false
	default:
		return false
	}
}

func roleToStorage(r Role) sqlconfig.UserRole {
	switch r {
	case RoleAdministrator:
		return sqlconfig.UserRoleAdministrator
	default:
		return sqlconfig.UserRoleOrdinary
	}
}

func roleFromStorage(r sqlconfig.UserRole) Role {
	switch r {
	case sqlconfig.UserRoleAdministrator:
		return RoleAdministrator
	default:
		return RoleOrdinary
	}
}

// Principal is the authenticated caller.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) requireAdministrator() error {
	if !p.Role.CanAdminister() {
		return ErrForbidden
	}
	return nil
}

// PrincipalLoader resolves a token subject to a principal.
type PrincipalLoader struct {
	users sqlconfig.IUserTable
}

func NewPrincipalLoader(users sqlconfig.IUserTable) *PrincipalLoader {
	return &PrincipalLoader{users: users}
}

// LoadPrincipal reads the user fresh on every request so role changes and
// deletions apply immediately.
func (l *PrincipalLoader) LoadPrincipal(ctx context.Context, userID uuid.UUID) (Principal, error) {
	user, err := l.users.FindByID(ctx, userID)
	if err != nil {
		return Principal{}, translateError(err)
	}
	return Principal{
		UserID: user.ID,
		Email:  user.Email,
		Role:   roleFromStorage(user.Role),
	}, nil
}
