// Package handlertest builds humatest APIs for handler tests.
package handlertest

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// NewAPI returns a test API whose requests run as p. A nil p leaves
// requests unauthenticated.
func NewAPI(t *testing.T, p *service.Principal) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if p != nil {
		principal := *p
		api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
			next(huma.WithContext(ctx, auth.WithPrincipal(ctx.Context(), principal)))
		})
	}
	return api
}

func User() *service.Principal {
	return &service.Principal{UserID: uuid.Must(uuid.NewV4()), Email: "user@example.com", Role: service.RoleOrdinary}
}

func Administrator() *service.Principal {
	return &service.Principal{UserID: uuid.Must(uuid.NewV4()), Email: "admin@example.com", Role: service.RoleAdministrator}
}
