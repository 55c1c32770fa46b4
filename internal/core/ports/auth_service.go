package ports

import (
	"context"

	"github.com/dashportal/auth-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}
