package ports

import (
	"context"
	"time"

	"github.com/explora/travel-system/internal/core/domain"
)

// CreateDestinationInput carries the fields for a new destination.
type CreateDestinationInput struct {
	Name        string
	Description string
	Region      string
	Price       *float64
}

// DestinationService exposes the destination catalog operations.
type DestinationService interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Create(ctx context.Context, in CreateDestinationInput) (*domain.Destination, error)
	Update(ctx context.Context, id string, patch DestinationPatch) (*domain.Destination, error)
	Delete(ctx context.Context, id string) error
}

// CreateReservationInput carries the fields for a new reservation. UserID is
// always taken from the caller's token claims, never from the request body.
type CreateReservationInput struct {
	UserID        string
	DestinationID string
	People        int
	CheckIn       time.Time
	CheckOut      time.Time
}

// ReservationService exposes booking operations.
type ReservationService interface {
	Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error)
}
