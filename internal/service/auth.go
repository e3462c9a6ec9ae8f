// Package service provides the business logic for sessions and contact
// records, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"leadvault/internal/models"
	"leadvault/internal/shared"
)

// AccountRepository defines the credential store operations required by the
// authentication service.
type AccountRepository interface {
	// CreateAccount stores a fully populated account row.
	CreateAccount(ctx context.Context, account *models.Account) error
	// EmailExists returns true if an account with the given email exists.
	// Email equality is byte-exact.
	EmailExists(ctx context.Context, email string) (bool, error)
	// FindByEmail returns the account with the given email, or
	// shared.ErrAccountNotFound.
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	// FindByID returns the account with the given id, or
	// shared.ErrAccountNotFound.
	FindByID(ctx context.Context, id string) (*models.Account, error)
}

// TokenCodec signs and verifies session tokens.
type TokenCodec interface {
	Sign(user models.User) (string, error)
	Parse(raw string) (models.User, error)
}

// Session is an established authenticated session: the public account
// projection plus the signed token the client persists and presents on
// subsequent requests.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// AuthService implements registration, login, and session restoration.
type AuthService struct {
	repo   AccountRepository
	tokens TokenCodec
}

// NewAuthService constructs an AuthService using the provided repository and
// token codec.
func NewAuthService(repo AccountRepository, tokens TokenCodec) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new account and establishes a session for it
// immediately (auto-login after registration). It returns
// shared.ErrEmailTaken if the email is already registered; the existing
// account set is left unchanged in that case.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role models.Role) (*Session, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", shared.ErrValidation, role)
	}

	taken, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, shared.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	return s.establish(account)
}

// Login verifies email, password, and role and establishes a session on
// success. Every mismatch, including an unknown email, yields
// shared.ErrInvalidCredentials; absence is a normal negative result, never a
// server failure, and no detail about which field mismatched is leaked.
func (s *AuthService) Login(ctx context.Context, email, password string, role models.Role) (*Session, error) {
	account, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, shared.ErrAccountNotFound) {
		return nil, shared.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if account.Role != role {
		return nil, shared.ErrInvalidCredentials
	}

	return s.establish(account)
}

// Restore adopts a previously persisted session token. The embedded account
// id is re-validated against the credential store: a token for an account
// that no longer exists downgrades to unauthenticated instead of being
// trusted on read. The projection is rebuilt from the live account row, so
// restored sessions never carry stale name, email, or role values.
func (s *AuthService) Restore(ctx context.Context, raw string) (*models.User, error) {
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, claims.ID)
	if errors.Is(err, shared.ErrAccountNotFound) {
		return nil, shared.ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	user := account.Public()
	return &user, nil
}

func (s *AuthService) establish(account *models.Account) (*Session, error) {
	user := account.Public()
	signed, err := s.tokens.Sign(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{User: user, Token: signed}, nil
}
