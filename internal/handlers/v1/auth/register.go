package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type RegisterBody struct {
	Email          string `json:"email" required:"true" maxLength:"254" doc:"Login email"`
	Password       string `json:"password" required:"true" maxLength:"72" doc:"Password, at least 6 characters"`
	InvitationCode string `json:"invitationCode" required:"true" doc:"Invitation code from an administrator"`
}

type RegisterInput struct {
	Body RegisterBody
}

type RegisterResponseBody struct {
	ID    string `json:"id" doc:"User UUID"`
	Email string `json:"email"`
	Token string `json:"token" doc:"Bearer token"`
}

type RegisterOutput struct {
	Body RegisterResponseBody
}

// RegisterHandler handles POST /v1/auth/register.
type RegisterHandler struct {
	AuthService registrar
}

func NewRegisterHandler(svc registrar) *RegisterHandler {
	return &RegisterHandler{AuthService: svc}
}

func (h *RegisterHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "register",
		Method:        http.MethodPost,
		Path:          "/v1/auth/register",
		Summary:       "Register",
		Description:   "Creates an account using an invitation code and returns a bearer token.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *RegisterHandler) handle(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	result, err := handlers.Timed(ctx, "registerMs", func() (*service.AuthResult, error) {
		return h.AuthService.Register(ctx, service.RegisterRequest{
			Email:          input.Body.Email,
			Password:       input.Body.Password,
			InvitationCode: input.Body.InvitationCode,
		})
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	return &RegisterOutput{Body: RegisterResponseBody{
		ID:    result.User.ID.String(),
		Email: result.User.Email,
		Token: result.Token,
	}}, nil
}
