package ports

import (
	"context"

	"github.com/dashportal/auth-service/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
//
// Create is an atomic insert-if-absent: a colliding username must fail with
// domain.ErrUserExists, never overwrite, even under concurrent registrations.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
