package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Category is the API response model for a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	Name      string `json:"name"`
	Type      string `json:"type" enum:"income,expense"`
	IsDefault bool   `json:"isDefault" doc:"Default categories are shared and read-only"`
	CreatedAt string `json:"createdAt" format:"date-time"`
}

func fromService(c service.Category) Category {
	return Category{
		ID:        c.ID.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		IsDefault: c.Default,
		CreatedAt: handlers.FormatTime(c.CreatedAt),
	}
}

type categoryService interface {
	ListCategories(ctx context.Context, p service.Principal) ([]service.Category, error)
	CreateCategory(ctx context.Context, p service.Principal, name, typ string) (*service.Category, error)
	UpdateCategory(ctx context.Context, p service.Principal, id uuid.UUID, req service.CategoryUpdateRequest) (*service.Category, error)
	DeleteCategory(ctx context.Context, p service.Principal, id uuid.UUID) error
}

type CategoryPath struct {
	ID string `path:"id" doc:"Category UUID"`
}

type CategoryOutput struct {
	Body Category
}

type ListCategoriesOutput struct {
	Body struct {
		Categories []Category `json:"categories"`
	}
}

type CreateCategoryBody struct {
	Name string `json:"name" required:"true" minLength:"1" maxLength:"30"`
	Type string `json:"type" required:"true" enum:"income,expense"`
}

type CreateCategoryInput struct {
	Body CreateCategoryBody
}

type UpdateCategoryInput struct {
	CategoryPath
	Body struct {
		Name *string `json:"name,omitempty" minLength:"1" maxLength:"30"`
		Type *string `json:"type,omitempty" enum:"income,expense"`
	}
}

// Handler serves /v1/categories.
type Handler struct {
	CategoryService categoryService
}

func NewHandler(svc categoryService) *Handler {
	return &Handler{CategoryService: svc}
}

func (h *Handler) Register(api huma.API) {
	tags := []string{"Categories"}

	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/v1/categories",
		Summary:     "List categories",
		Description: "Returns the default categories followed by the caller's own.",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/v1/categories",
		Summary:       "Create category",
		Tags:          tags,
		Security:      auth.Security(),
		DefaultStatus: http.StatusCreated,
	}, h.create)

	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/v1/categories/{id}",
		Summary:     "Update category",
		Tags:        tags,
		Security:    auth.Security(),
	}, h.update)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/v1/categories/{id}",
		Summary:       "Delete category",
		Description:   "Transactions that used the category keep it and report it as Uncategorized.",
		Tags:          tags,
		Security:      auth.Security(),
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListCategoriesOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := h.CategoryService.ListCategories(ctx, p)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	out := &ListCategoriesOutput{}
	out.Body.Categories = make([]Category, len(categories))
	for i, c := range categories {
		out.Body.Categories[i] = fromService(c)
	}
	return out, nil
}

func (h *Handler) create(ctx context.Context, input *CreateCategoryInput) (*CategoryOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := h.CategoryService.CreateCategory(ctx, p, input.Body.Name, input.Body.Type)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &CategoryOutput{Body: fromService(*c)}, nil
}

func (h *Handler) update(ctx context.Context, input *UpdateCategoryInput) (*CategoryOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("category id", input.ID)
	if err != nil {
		return nil, err
	}
	c, err := h.CategoryService.UpdateCategory(ctx, p, id, service.CategoryUpdateRequest{
		Name: input.Body.Name,
		Type: input.Body.Type,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &CategoryOutput{Body: fromService(*c)}, nil
}

func (h *Handler) delete(ctx context.Context, input *CategoryPath) (*struct{}, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("category id", input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.CategoryService.DeleteCategory(ctx, p, id); err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return nil, nil
}
