package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dashportal/auth-service/internal/core/domain"
	"github.com/dashportal/auth-service/internal/core/password"
	"github.com/dashportal/auth-service/internal/core/ports"
	"github.com/dashportal/auth-service/internal/core/token"
)

// AuthService implements registration and login. The hasher and token issuer
// are injected at construction; no configuration is read ambiently.
type AuthService struct {
	repo   ports.AuthRepository
	hasher password.Hasher
	tokens *token.Issuer
}

func NewAuthService(repo ports.AuthRepository, hasher password.Hasher, tokens *token.Issuer) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates a credential record and issues a token for it, so a fresh
// account is immediately usable without a second login round-trip.
func (s *AuthService) Register(ctx context.Context, username, pass, role string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, "", domain.ErrInvalidCredentials
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, "", domain.ErrInvalidRole
	}

	hash, err := s.hasher.Hash(pass)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	signed, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", err
	}

	return created, signed, nil
}

// Login verifies credentials and issues a token. An unknown username and a
// password mismatch are deliberately indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, pass string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !s.hasher.Verify(pass, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}
