package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// UserRole is persisted as a smallint.
type UserRole int16

const (
	UserRoleOrdinary UserRole = iota
	UserRoleAdministrator
)

// User represents a user record. PasswordHash never leaves the service layer.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Nickname     string    `db:"nickname"`
	Role         UserRole  `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserCreate is the input for creating a new user.
type UserCreate struct {
	Email        string
	PasswordHash string
	Nickname     string
	Role         UserRole
}

// UserUpdate carries the profile fields a user may change.
type UserUpdate struct {
	Nickname     omit.Val[string]
	PasswordHash omit.Val[string]
}

// IUserTable defines the interface for user storage operations.
//
//go:generate mockery --name IUserTable --with-expecter --inpackage --filename mock_IUserTable.go
type IUserTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Count(ctx context.Context) (int64, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role UserRole) (*User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, update *UserUpdate) (*User, error)
}
