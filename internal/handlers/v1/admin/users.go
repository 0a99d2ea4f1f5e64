package admin

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/user"
	"github.com/carson-networks/ledger-server/internal/service"
)

type userAdministrator interface {
	ListUsers(ctx context.Context, p service.Principal) ([]service.User, error)
	UpdateRole(ctx context.Context, p service.Principal, userID uuid.UUID, roleName string) (*service.User, error)
}

type ListUsersOutput struct {
	Body struct {
		Users []user.User `json:"users"`
	}
}

type UpdateRoleInput struct {
	ID   string `path:"id" doc:"User UUID"`
	Body struct {
		Role string `json:"role" required:"true" enum:"user,admin"`
	}
}

type UpdateRoleOutput struct {
	Body user.User
}

// UsersHandler serves the /v1/admin/users endpoints. Every operation is
// restricted to administrators.
type UsersHandler struct {
	UserService userAdministrator
}

func NewUsersHandler(svc userAdministrator) *UsersHandler {
	return &UsersHandler{UserService: svc}
}

func (h *UsersHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/v1/admin/users",
		Summary:     "List users",
		Tags:        []string{"Admin"},
		Security:    auth.Security(),
		Metadata:    auth.AdministratorOnly(),
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "update-user-role",
		Method:      http.MethodPut,
		Path:        "/v1/admin/users/{id}/role",
		Summary:     "Change a user's role",
		Description: "Administrators cannot change their own role.",
		Tags:        []string{"Admin"},
		Security:    auth.Security(),
		Metadata:    auth.AdministratorOnly(),
	}, h.updateRole)
}

func (h *UsersHandler) list(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	users, err := h.UserService.ListUsers(ctx, p)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	out := &ListUsersOutput{}
	out.Body.Users = make([]user.User, len(users))
	for i, u := range users {
		out.Body.Users[i] = user.FromService(u)
	}
	return out, nil
}

func (h *UsersHandler) updateRole(ctx context.Context, input *UpdateRoleInput) (*UpdateRoleOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	id, err := handlers.ParseID("user id", input.ID)
	if err != nil {
		return nil, err
	}
	u, err := h.UserService.UpdateRole(ctx, p, id, input.Body.Role)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &UpdateRoleOutput{Body: user.FromService(*u)}, nil
}
