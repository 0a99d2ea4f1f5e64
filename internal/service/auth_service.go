package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
	"github.com/carson-networks/ledger-server/internal/storage/sqlconfig"
)

// AuthService handles registration and login.
type AuthService struct {
	storage  *storage.Storage
	operator actionProcessor
	tokens   tokenIssuer
	hasher   passwordHasher
	now      func() time.Time
}

func NewAuthService(store *storage.Storage, op actionProcessor, tokens tokenIssuer, hasher passwordHasher) *AuthService {
	return &AuthService{
		storage:  store,
		operator: op,
		tokens:   tokens,
		hasher:   hasher,
		now:      time.Now,
	}
}

type RegisterRequest struct {
	Email          string
	Password       string
	InvitationCode string
}

// Register creates an ordinary user, consuming one use of the invitation
// code, and signs them in.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(req.InvitationCode)
	if code == "" {
		return nil, validationError("invitation code is required")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	action := &actions.RegisterUser{
		Email:          email,
		PasswordHash:   hash,
		InvitationCode: code,
		Now:            s.now(),
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, translateError(err)
	}

	return s.signIn(action.Created)
}

// Login verifies credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.storage.Users.FindByEmail(ctx, email)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		return nil, ErrUnauthorized
	}
	if err != nil {
		return nil, translateError(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, ErrUnauthorized
	}

	return s.signIn(user)
}

func (s *AuthService) signIn(user *sqlconfig.User) (*AuthResult, error) {
	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: userFromStorage(user), Token: token}, nil
}
