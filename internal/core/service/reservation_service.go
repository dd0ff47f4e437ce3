package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/explora/travel-system/internal/api/metrics"
	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
)

// ReservationService implements booking creation and per-user listing.
type ReservationService struct {
	repo         ports.ReservationRepository
	destinations ports.DestinationRepository
	logger       zerolog.Logger
}

func NewReservationService(repo ports.ReservationRepository, destinations ports.DestinationRepository, logger zerolog.Logger) *ReservationService {
	return &ReservationService{repo: repo, destinations: destinations, logger: logger}
}

// Create validates the date range, resolves the destination's price and
// stores the reservation with total_price = price × people × whole days.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, domain.ErrInvalidDateRange
	}

	dest, err := s.destinations.FindByID(ctx, in.DestinationID)
	if err != nil {
		return nil, err
	}
	if !dest.HasPrice() {
		return nil, domain.ErrMissingPrice
	}

	people := in.People
	if people <= 0 {
		people = 1
	}

	nights := domain.Nights(in.CheckIn, in.CheckOut)
	res := &domain.Reservation{
		UserID:        in.UserID,
		DestinationID: in.DestinationID,
		People:        people,
		CheckIn:       in.CheckIn,
		CheckOut:      in.CheckOut,
		TotalPrice:    *dest.Price * float64(people) * float64(nights),
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, res)
	if err != nil {
		return nil, err
	}

	metrics.ReservationsCreatedTotal.Inc()
	s.logger.Info().
		Str("reservation_id", created.ID).
		Str("user_id", created.UserID).
		Str("destination_id", created.DestinationID).
		Float64("total_price", created.TotalPrice).
		Msg("reservation created")
	return created, nil
}

// ListByUser returns the caller's own reservations and nothing else.
func (s *ReservationService) ListByUser(ctx context.Context, userID string) ([]domain.Reservation, error) {
	return s.repo.ListByUser(ctx, userID)
}
