package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type profileService interface {
	Profile(ctx context.Context, p service.Principal) (*service.User, error)
	UpdateProfile(ctx context.Context, p service.Principal, req service.ProfileUpdate) (*service.User, error)
}

type ProfileOutput struct {
	Body User
}

type UpdateProfileBody struct {
	Nickname *string `json:"nickname,omitempty" maxLength:"30"`
	Password *string `json:"password,omitempty" maxLength:"72" doc:"New password, at least 6 characters"`
}

type UpdateProfileInput struct {
	Body UpdateProfileBody
}

// ProfileHandler handles GET and PUT /v1/users/profile.
type ProfileHandler struct {
	UserService profileService
}

func NewProfileHandler(svc profileService) *ProfileHandler {
	return &ProfileHandler{UserService: svc}
}

func (h *ProfileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-profile",
		Method:      http.MethodGet,
		Path:        "/v1/users/profile",
		Summary:     "Get profile",
		Tags:        []string{"Users"},
		Security:    auth.Security(),
	}, h.get)

	huma.Register(api, huma.Operation{
		OperationID: "update-profile",
		Method:      http.MethodPut,
		Path:        "/v1/users/profile",
		Summary:     "Update profile",
		Description: "Changes the caller's nickname and/or password.",
		Tags:        []string{"Users"},
		Security:    auth.Security(),
	}, h.update)
}

func (h *ProfileHandler) get(ctx context.Context, _ *struct{}) (*ProfileOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := h.UserService.Profile(ctx, p)
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &ProfileOutput{Body: FromService(*u)}, nil
}

func (h *ProfileHandler) update(ctx context.Context, input *UpdateProfileInput) (*ProfileOutput, error) {
	p, err := handlers.Caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := h.UserService.UpdateProfile(ctx, p, service.ProfileUpdate{
		Nickname: input.Body.Nickname,
		Password: input.Body.Password,
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}
	return &ProfileOutput{Body: FromService(*u)}, nil
}
