package ports

import (
	"context"

	"github.com/explora/travel-system/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateRole(ctx context.Context, username string, role domain.Role) (*domain.User, error)
	EnsureIndexes(ctx context.Context) error
}
