package service

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// User is the service view of an account holder. The password hash never
// leaves storage.
type User struct {
	ID        uuid.UUID
	Email     string
	Nickname  string
	Role      Role
	CreatedAt time.Time
}

func userFromStorage(u *sqlconfig.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Role:      roleFromStorage(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// AuthResult is returned by register and login.
type AuthResult struct {
	User  User
	Token string
}
