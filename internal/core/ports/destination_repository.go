package ports

import (
	"context"

	"github.com/explora/travel-system/internal/core/domain"
)

// DestinationPatch carries a partial update: nil fields are left untouched.
type DestinationPatch struct {
	Name        *string
	Description *string
	Region      *string
	Price       *float64
}

// DestinationRepository defines the persistence interface for destinations.
type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	FindByID(ctx context.Context, id string) (*domain.Destination, error)
	Create(ctx context.Context, dest *domain.Destination) (*domain.Destination, error)
	Update(ctx context.Context, id string, patch DestinationPatch) (*domain.Destination, error)
	Delete(ctx context.Context, id string) error
}
