package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/service"
)

type stubLoader struct {
	principals map[uuid.UUID]service.Principal
	err        error
}

func (s *stubLoader) LoadPrincipal(ctx context.Context, userID uuid.UUID) (service.Principal, error) {
	if s.err != nil {
		return service.Principal{}, s.err
	}
	p, ok := s.principals[userID]
	if !ok {
		return service.Principal{}, service.ErrNotFound
	}
	return p, nil
}

type whoAmIOutput struct {
	Body struct {
		UserID string `json:"userId"`
	}
}

func newAuthTestAPI(t *testing.T, loader principalLoader) (humatest.TestAPI, *TokenIssuer) {
	t.Helper()
	_, api := humatest.New(t)
	tokens := NewTokenIssuer(testSecret, time.Hour)
	api.UseMiddleware(Middleware(api, tokens, loader))

	handler := func(ctx context.Context, _ *struct{}) (*whoAmIOutput, error) {
		out := &whoAmIOutput{}
		if p, ok := PrincipalFromContext(ctx); ok {
			out.Body.UserID = p.UserID.String()
		}
		return out, nil
	}

	huma.Register(api, huma.Operation{
		OperationID: "public",
		Method:      http.MethodGet,
		Path:        "/public",
	}, handler)
	huma.Register(api, huma.Operation{
		OperationID: "private",
		Method:      http.MethodGet,
		Path:        "/private",
		Security:    Security(),
	}, handler)
	huma.Register(api, huma.Operation{
		OperationID: "admin",
		Method:      http.MethodGet,
		Path:        "/admin",
		Security:    Security(),
		Metadata:    AdministratorOnly(),
	}, handler)

	return api, tokens
}

func bearer(token string) string {
	return "Authorization: Bearer " + token
}

func TestMiddleware_PublicOperation(t *testing.T) {
	api, _ := newAuthTestAPI(t, &stubLoader{})

	resp := api.Get("/public")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMiddleware_MissingToken(t *testing.T) {
	api, _ := newAuthTestAPI(t, &stubLoader{})

	resp := api.Get("/private")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_InvalidToken(t *testing.T) {
	api, _ := newAuthTestAPI(t, &stubLoader{})

	resp := api.Get("/private", bearer("garbage"))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_ValidToken(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	loader := &stubLoader{principals: map[uuid.UUID]service.Principal{
		userID: {UserID: userID, Role: service.RoleOrdinary},
	}}
	api, tokens := newAuthTestAPI(t, loader)
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	resp := api.Get("/private", bearer(token))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestMiddleware_TokenQueryParameter(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	loader := &stubLoader{principals: map[uuid.UUID]service.Principal{userID: {UserID: userID}}}
	api, tokens := newAuthTestAPI(t, loader)
	token, err := tokens.Issue(userID)
	require.NoError(t, err)

	resp := api.Get("/private?token=" + token)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMiddleware_DeletedUser(t *testing.T) {
	api, tokens := newAuthTestAPI(t, &stubLoader{})
	token, err := tokens.Issue(uuid.Must(uuid.NewV4()))
	require.NoError(t, err)

	resp := api.Get("/private", bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMiddleware_StoreUnavailable(t *testing.T) {
	api, tokens := newAuthTestAPI(t, &stubLoader{err: service.ErrUnavailable})
	token, err := tokens.Issue(uuid.Must(uuid.NewV4()))
	require.NoError(t, err)

	resp := api.Get("/private", bearer(token))
	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestMiddleware_AdministratorOnly(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	adminID := uuid.Must(uuid.NewV4())
	loader := &stubLoader{principals: map[uuid.UUID]service.Principal{
		userID:  {UserID: userID, Role: service.RoleOrdinary},
		adminID: {UserID: adminID, Role: service.RoleAdministrator},
	}}
	api, tokens := newAuthTestAPI(t, loader)

	userToken, err := tokens.Issue(userID)
	require.NoError(t, err)
	adminToken, err := tokens.Issue(adminID)
	require.NoError(t, err)

	assert.Equal(t, http.StatusForbidden, api.Get("/admin", bearer(userToken)).Code)
	assert.Equal(t, http.StatusOK, api.Get("/admin", bearer(adminToken)).Code)
}
