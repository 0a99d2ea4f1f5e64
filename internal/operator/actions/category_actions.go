package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// DefaultCategory is a category shared by every user.
type DefaultCategory struct {
	Name string
	Type reporting.Type
}

var DefaultCategories = []DefaultCategory{
	{Name: "Salary", Type: reporting.TypeIncome},
	{Name: "Freelance", Type: reporting.TypeIncome},
	{Name: "Investment", Type: reporting.TypeIncome},
	{Name: "Food", Type: reporting.TypeExpense},
	{Name: "Transport", Type: reporting.TypeExpense},
	{Name: "Housing", Type: reporting.TypeExpense},
	{Name: "Entertainment", Type: reporting.TypeExpense},
	{Name: "Health", Type: reporting.TypeExpense},
	{Name: "Other", Type: reporting.TypeExpense},
}

// SeedDefaultCategories inserts the defaults once. It does nothing if any
// default already exists.
type SeedDefaultCategories struct {
	Seeded int
}

func (a *SeedDefaultCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	count, err := writer.Categories.CountDefaults(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, def := range DefaultCategories {
		_, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
			Name: def.Name,
			Type: string(def.Type),
		})
		if err != nil {
			return err
		}
		a.Seeded++
	}
	return nil
}

type CreateCategory struct {
	UserID uuid.UUID
	Name   string
	Type   reporting.Type

	Created *sqlconfig.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.Insert(ctx, &sqlconfig.CategoryCreate{
		UserID: uuid.NullUUID{UUID: a.UserID, Valid: true},
		Name:   a.Name,
		Type:   string(a.Type),
	})
	if err != nil {
		return err
	}
	a.Created = category
	return nil
}

type UpdateCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
	Update     sqlconfig.CategoryUpdate

	Updated *sqlconfig.Category
}

func (a *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedCategory(ctx, writer, a.UserID, a.CategoryID); err != nil {
		return err
	}

	category, err := writer.Categories.Update(ctx, a.CategoryID, &a.Update)
	if err != nil {
		return err
	}
	a.Updated = category
	return nil
}

type DeleteCategory struct {
	UserID     uuid.UUID
	CategoryID uuid.UUID
}

func (a *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := ownedCategory(ctx, writer, a.UserID, a.CategoryID); err != nil {
		return err
	}
	return writer.Categories.Delete(ctx, a.CategoryID)
}
