package service

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// Category is the service view of a category. Default categories are
// shared and read-only.
type Category struct {
	ID        uuid.UUID
	Name      string
	Type      reporting.Type
	Default   bool
	CreatedAt time.Time
}

func categoryFromStorage(c *sqlconfig.Category) Category {
	return Category{
		ID:        c.ID,
		Name:      c.Name,
		Type:      reporting.Type(c.Type),
		Default:   c.IsDefault(),
		CreatedAt: c.CreatedAt,
	}
}

type CategoryService struct {
	storage  *storage.Storage
	operator actionProcessor
	lookup   *Lookup
}

func NewCategoryService(store *storage.Storage, op actionProcessor, lookup *Lookup) *CategoryService {
	return &CategoryService{storage: store, operator: op, lookup: lookup}
}

// ListCategories returns the defaults followed by the caller's own categories.
func (s *CategoryService) ListCategories(ctx context.Context, p Principal) ([]Category, error) {
	rows, err := s.storage.Categories.ListVisible(ctx, p.UserID)
	if err != nil {
		return nil, translateError(err)
	}
	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, p Principal, name, typ string) (*Category, error) {
	name, err := checkLength("name", name, 1, maxCategoryName)
	if err != nil {
		return nil, err
	}
	t, err := reporting.ParseType(typ)
	if err != nil {
		return nil, translateError(err)
	}

	action := &actions.CreateCategory{UserID: p.UserID, Name: name, Type: t}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	view := categoryFromStorage(action.Created)
	return &view, nil
}

// CategoryUpdateRequest changes only the non-nil fields.
type CategoryUpdateRequest struct {
	Name *string
	Type *string
}

func (s *CategoryService) UpdateCategory(ctx context.Context, p Principal, id uuid.UUID, req CategoryUpdateRequest) (*Category, error) {
	update := sqlconfig.CategoryUpdate{}
	if req.Name != nil {
		name, err := checkLength("name", *req.Name, 1, maxCategoryName)
		if err != nil {
			return nil, err
		}
		update.Name = omit.From(name)
	}
	if req.Type != nil {
		t, err := reporting.ParseType(*req.Type)
		if err != nil {
			return nil, translateError(err)
		}
		update.Type = omit.From(string(t))
	}

	action := &actions.UpdateCategory{UserID: p.UserID, CategoryID: id, Update: update}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}
	s.lookup.InvalidateCategory(id)

	view := categoryFromStorage(action.Updated)
	return &view, nil
}

// DeleteCategory removes one of the caller's categories. Transactions that
// used it are reported as uncategorized afterwards.
func (s *CategoryService) DeleteCategory(ctx context.Context, p Principal, id uuid.UUID) error {
	action := &actions.DeleteCategory{UserID: p.UserID, CategoryID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return translateError(err)
	}
	s.lookup.InvalidateCategory(id)
	return nil
}
