package auth

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/service"
)

type registrar interface {
	Register(ctx context.Context, req service.RegisterRequest) (*service.AuthResult, error)
}

type authenticator interface {
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}
