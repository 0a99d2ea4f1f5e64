package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/handlers/handlertest"
	"github.com/carson-networks/ledger-server/internal/service"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*service.AuthResult, error) {
	args := m.Called(ctx, req)
	result, _ := args.Get(0).(*service.AuthResult)
	return result, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResult, error) {
	args := m.Called(ctx, email, password)
	result, _ := args.Get(0).(*service.AuthResult)
	return result, args.Error(1)
}

func TestHTTP_Register_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, service.RegisterRequest{
		Email: "a@example.com", Password: "secret1", InvitationCode: "INVITE-0A1B2C3D",
	}).Return(&service.AuthResult{
		User:  service.User{ID: userID, Email: "a@example.com"},
		Token: "tok",
	}, nil)

	api := handlertest.NewAPI(t, nil)
	NewRegisterHandler(svc).Register(api)

	resp := api.Post("/v1/auth/register", RegisterBody{
		Email: "a@example.com", Password: "secret1", InvitationCode: "INVITE-0A1B2C3D",
	})

	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var body RegisterResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, userID.String(), body.ID)
	assert.Equal(t, "tok", body.Token)
	svc.AssertExpectations(t)
}

func TestHTTP_Register_InvitationErrors(t *testing.T) {
	for _, err := range []error{service.ErrInvitationInvalid, service.ErrInvitationExhausted, service.ErrInvitationExpired} {
		svc := new(mockAuthService)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, err)

		api := handlertest.NewAPI(t, nil)
		NewRegisterHandler(svc).Register(api)

		resp := api.Post("/v1/auth/register", RegisterBody{Email: "a@example.com", Password: "secret1", InvitationCode: "X"})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Contains(t, resp.Body.String(), err.Error())
	}
}

func TestHTTP_Register_DuplicateEmail(t *testing.T) {
	svc := new(mockAuthService)
	svc.On("Register", mock.Anything, mock.Anything).Return(nil, service.ErrConflict)

	api := handlertest.NewAPI(t, nil)
	NewRegisterHandler(svc).Register(api)

	resp := api.Post("/v1/auth/register", RegisterBody{Email: "a@example.com", Password: "secret1", InvitationCode: "X"})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestHTTP_Register_MissingFields(t *testing.T) {
	svc := new(mockAuthService)
	api := handlertest.NewAPI(t, nil)
	NewRegisterHandler(svc).Register(api)

	resp := api.Post("/v1/auth/register", map[string]any{"email": "a@example.com"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "Register")
}

func TestHTTP_Login(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	svc := new(mockAuthService)
	svc.On("Login", mock.Anything, "a@example.com", "secret1").Return(&service.AuthResult{
		User:  service.User{ID: userID, Email: "a@example.com", Nickname: "Ann", Role: service.RoleAdministrator},
		Token: "tok",
	}, nil)
	svc.On("Login", mock.Anything, "a@example.com", "wrong").Return(nil, service.ErrUnauthorized)

	api := handlertest.NewAPI(t, nil)
	NewLoginHandler(svc).Register(api)

	resp := api.Post("/v1/auth/login", LoginBody{Email: "a@example.com", Password: "secret1"})
	require.Equal(t, http.StatusOK, resp.Code)
	var body LoginResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "admin", body.Role)
	assert.Equal(t, "Ann", body.Nickname)

	resp = api.Post("/v1/auth/login", LoginBody{Email: "a@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}
