package ports

import (
	"context"

	"github.com/explora/travel-system/internal/core/domain"
)

// ReservationRepository defines the persistence interface for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
	EnsureIndexes(ctx context.Context) error
}
