package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: name too short", service.ErrValidation), http.StatusBadRequest},
		{service.ErrInvitationExpired, http.StatusBadRequest},
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrConflict, http.StatusConflict},
		{service.ErrUnavailable, http.StatusServiceUnavailable},
		{errors.New("pq: relation does not exist"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		var statusErr huma.StatusError
		require.ErrorAs(t, Error(context.Background(), tt.err), &statusErr)
		assert.Equal(t, tt.want, statusErr.GetStatus(), tt.err.Error())
	}
}

func TestError_HidesInternalDetail(t *testing.T) {
	logData := logging.NewLogData(logging.SetupLogging())
	ctx := logging.WithLogData(context.Background(), logData)

	err := Error(ctx, errors.New("pq: password authentication failed"))

	assert.NotContains(t, err.Error(), "password authentication")
	assert.Equal(t, "pq: password authentication failed", logData.Log().Data["error"])
}

func TestCaller(t *testing.T) {
	_, err := Caller(context.Background())
	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.GetStatus())

	p := service.Principal{Email: "a@example.com"}
	got, err := Caller(auth.WithPrincipal(context.Background(), p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseID(t *testing.T) {
	_, err := ParseID("ledgerId", "nope")
	assert.Error(t, err)

	id, err := ParseOptionalID("ledgerId", nil)
	assert.NoError(t, err)
	assert.Nil(t, id)
}
