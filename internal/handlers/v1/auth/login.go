package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers"
	"github.com/carson-networks/ledger-server/internal/service"
)

type LoginBody struct {
	Email    string `json:"email" required:"true" maxLength:"254"`
	Password string `json:"password" required:"true" maxLength:"72"`
}

type LoginInput struct {
	Body LoginBody
}

type LoginResponseBody struct {
	ID       string `json:"id" doc:"User UUID"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role" enum:"user,admin"`
	Token    string `json:"token" doc:"Bearer token"`
}

type LoginOutput struct {
	Body LoginResponseBody
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	AuthService authenticator
}

func NewLoginHandler(svc authenticator) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Exchanges an email and password for a bearer token.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	result, err := handlers.Timed(ctx, "loginMs", func() (*service.AuthResult, error) {
		return h.AuthService.Login(ctx, input.Body.Email, input.Body.Password)
	})
	if err != nil {
		return nil, handlers.Error(ctx, err)
	}

	return &LoginOutput{Body: LoginResponseBody{
		ID:       result.User.ID.String(),
		Email:    result.User.Email,
		Nickname: result.User.Nickname,
		Role:     result.User.Role.String(),
		Token:    result.Token,
	}}, nil
}
