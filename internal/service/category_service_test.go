package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/reporting"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

func newTestCategoryService(t *testing.T) (*CategoryService, tables) {
	t.Helper()
	store, op, m := newTestStore(t)
	return NewCategoryService(store, op, newTestLookup(store)), m
}

func TestListCategories(t *testing.T) {
	svc, m := newTestCategoryService(t)
	p := ordinary()

	m.categories.EXPECT().ListVisible(mock.Anything, p.UserID).Return([]*sqlconfig.Category{
		{ID: newID(), Name: "Food", Type: "expense"},
		{ID: newID(), UserID: uuid.NullUUID{UUID: p.UserID, Valid: true}, Name: "Pets", Type: "expense"},
	}, nil)

	categories, err := svc.ListCategories(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.True(t, categories[0].Default)
	assert.False(t, categories[1].Default)
	assert.Equal(t, reporting.TypeExpense, categories[1].Type)
}

func TestCreateCategory(t *testing.T) {
	svc, m := newTestCategoryService(t)
	p := ordinary()

	m.categories.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *sqlconfig.CategoryCreate) bool {
		return c.UserID.Valid && c.UserID.UUID == p.UserID && c.Name == "Pets" && c.Type == "expense"
	})).Return(&sqlconfig.Category{ID: newID(), UserID: uuid.NullUUID{UUID: p.UserID, Valid: true}, Name: "Pets", Type: "expense"}, nil)

	category, err := svc.CreateCategory(context.Background(), p, "Pets", "expense")
	require.NoError(t, err)
	assert.Equal(t, "Pets", category.Name)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	svc, m := newTestCategoryService(t)
	m.categories.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil, sqlconfig.ErrDuplicate)

	_, err := svc.CreateCategory(context.Background(), ordinary(), "Pets", "expense")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCreateCategory_InvalidType(t *testing.T) {
	svc, _ := newTestCategoryService(t)

	_, err := svc.CreateCategory(context.Background(), ordinary(), "Pets", "both")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateCategory_Default(t *testing.T) {
	svc, m := newTestCategoryService(t)
	categoryID := newID()
	name := "Meals"

	m.categories.EXPECT().FindByIDForUpdate(mock.Anything, categoryID).
		Return(&sqlconfig.Category{ID: categoryID, Name: "Food", Type: "expense"}, nil)

	_, err := svc.UpdateCategory(context.Background(), ordinary(), categoryID, CategoryUpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteCategory_OtherUser(t *testing.T) {
	svc, m := newTestCategoryService(t)
	categoryID := newID()

	m.categories.EXPECT().FindByIDForUpdate(mock.Anything, categoryID).Return(&sqlconfig.Category{
		ID: categoryID, UserID: uuid.NullUUID{UUID: newID(), Valid: true},
	}, nil)

	err := svc.DeleteCategory(context.Background(), ordinary(), categoryID)
	assert.ErrorIs(t, err, ErrNotFound)
}
