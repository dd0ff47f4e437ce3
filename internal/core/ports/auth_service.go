package ports

import (
	"context"

	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/security"
)

// AuthService orchestrates registration, login, token verification and role
// elevation.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	Verify(token string) (*security.Claims, error)
	Elevate(ctx context.Context, username string) (*domain.User, error)
}
