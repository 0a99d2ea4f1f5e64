// Package handlers holds helpers shared by the versioned API handlers.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// Caller returns the authenticated principal or a 401.
func Caller(ctx context.Context) (service.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return service.Principal{}, huma.NewError(http.StatusUnauthorized, "authentication required")
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("userID", p.UserID.String())
	}
	return p, nil
}

// ParseID parses a UUID path or body field, answering 400 on failure.
func ParseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// ParseOptionalID is ParseID for fields that may be omitted.
func ParseOptionalID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := ParseID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Error maps a service error to an HTTP error. Details of unexpected errors
// go to the request log, never to the client.
func Error(ctx context.Context, err error) error {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvitationInvalid),
		errors.Is(err, service.ErrInvitationExhausted),
		errors.Is(err, service.ErrInvitationExpired):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		status = http.StatusUnauthorized
		message = "invalid email or password"
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		message = "forbidden"
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = "not found"
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		message = "already exists"
	case errors.Is(err, service.ErrUnavailable):
		status = http.StatusServiceUnavailable
		message = "service temporarily unavailable, retry later"
	default:
		status = http.StatusInternalServerError
		message = "internal server error"
	}

	if logData := logging.GetLogData(ctx); logData != nil && status >= http.StatusInternalServerError {
		logData.AddData("error", err.Error())
	}
	return huma.NewError(status, message)
}

// Timed runs fn under a named timing on the request's LogData.
func Timed[T any](ctx context.Context, name string, fn func() (T, error)) (T, error) {
	return logging.Timed(logging.GetLogData(ctx), name, fn)
}

// FormatTime renders timestamps in API responses.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
