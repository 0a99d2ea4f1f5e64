package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. A NULL UserID marks a default
// category shared by every user.
type Category struct {
	ID        uuid.UUID     `db:"id"`
	UserID    uuid.NullUUID `db:"user_id"`
	Name      string        `db:"name"`
	Type      string        `db:"type"`
	CreatedAt time.Time     `db:"created_at"`
}

func (c *Category) IsDefault() bool {
	return !c.UserID.Valid
}

// CategoryCreate is the input for creating a category. Leave UserID invalid
// to create a default.
type CategoryCreate struct {
	UserID uuid.NullUUID
	Name   string
	Type   string
}

// CategoryUpdate applies only the fields that are set.
type CategoryUpdate struct {
	Name omit.Val[string]
	Type omit.Val[string]
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --with-expecter --inpackage --filename mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Category, error)
	ListVisible(ctx context.Context, userID uuid.UUID) ([]*Category, error)
	CountDefaults(ctx context.Context) (int64, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
