package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

const (
	// SecurityScheme is the OpenAPI scheme name operations declare to
	// require a bearer token.
	SecurityScheme = "bearer"
	// MetadataRequiresAdministrator marks an operation as admin-only.
	MetadataRequiresAdministrator = "requiresAdministrator"
)

type principalKey struct{}

type principalLoader interface {
	LoadPrincipal(ctx context.Context, userID uuid.UUID) (service.Principal, error)
}

// Security is the per-operation requirement for authenticated endpoints.
func Security() []map[string][]string {
	return []map[string][]string{{SecurityScheme: {}}}
}

// AdministratorOnly is operation metadata for admin-only endpoints.
func AdministratorOnly() map[string]any {
	return map[string]any{MetadataRequiresAdministrator: true}
}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p service.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the authenticated caller, if any.
func PrincipalFromContext(ctx context.Context) (service.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(service.Principal)
	return p, ok
}

// Middleware authenticates operations that declare the bearer scheme. The
// token comes from the Authorization header, or the token query parameter
// for download links.
func Middleware(api huma.API, tokens *TokenIssuer, loader principalLoader) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		op := ctx.Operation()
		if op == nil || !requiresBearer(op) {
			next(ctx)
			return
		}

		raw := bearerToken(ctx)
		if raw == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := tokens.Parse(raw)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		principal, err := loader.LoadPrincipal(ctx.Context(), userID)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrNotFound):
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")
			return
		case errors.Is(err, service.ErrUnavailable):
			_ = huma.WriteErr(api, ctx, http.StatusServiceUnavailable, "service temporarily unavailable")
			return
		default:
			if logData := logging.GetLogData(ctx.Context()); logData != nil {
				logData.AddData("authError", err.Error())
			}
			_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "internal server error")
			return
		}

		if adminOnly, _ := op.Metadata[MetadataRequiresAdministrator].(bool); adminOnly && !principal.Role.CanAdminister() {
			_ = huma.WriteErr(api, ctx, http.StatusForbidden, "administrator role required")
			return
		}

		if logData := logging.GetLogData(ctx.Context()); logData != nil {
			logData.AddData("userID", principal.UserID.String())
		}
		next(huma.WithContext(ctx, WithPrincipal(ctx.Context(), principal)))
	}
}

func requiresBearer(op *huma.Operation) bool {
	for _, requirement := range op.Security {
		if _, ok := requirement[SecurityScheme]; ok {
			return true
		}
	}
	return false
}

func bearerToken(ctx huma.Context) string {
	header := ctx.Header("Authorization")
	if scheme, token, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}
	return ctx.Query("token")
}
