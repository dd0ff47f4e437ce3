package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/explora/travel-system/internal/api/metrics"
	"github.com/explora/travel-system/internal/core/domain"
	"github.com/explora/travel-system/internal/core/ports"
)

// DestinationService implements the destination catalog.
type DestinationService struct {
	repo   ports.DestinationRepository
	logger zerolog.Logger
}

func NewDestinationService(repo ports.DestinationRepository, logger zerolog.Logger) *DestinationService {
	return &DestinationService{repo: repo, logger: logger}
}

// List returns all destinations, ordered by id ascending.
func (s *DestinationService) List(ctx context.Context) ([]domain.Destination, error) {
	return s.repo.List(ctx)
}

func (s *DestinationService) Create(ctx context.Context, in ports.CreateDestinationInput) (*domain.Destination, error) {
	now := time.Now().UTC()
	dest := &domain.Destination{
		Name:        in.Name,
		Description: in.Description,
		Region:      in.Region,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, dest)
	if err != nil {
		return nil, err
	}

	metrics.DestinationWritesTotal.WithLabelValues("create").Inc()
	s.logger.Info().Str("destination_id", created.ID).Str("name", created.Name).Msg("destination created")
	return created, nil
}

// Update applies only the fields set in patch; nil fields keep their stored
// value. A patch with no fields set returns the current row unchanged.
func (s *DestinationService) Update(ctx context.Context, id string, patch ports.DestinationPatch) (*domain.Destination, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	metrics.DestinationWritesTotal.WithLabelValues("update").Inc()
	s.logger.Info().Str("destination_id", id).Msg("destination updated")
	return updated, nil
}

func (s *DestinationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	metrics.DestinationWritesTotal.WithLabelValues("delete").Inc()
	s.logger.Info().Str("destination_id", id).Msg("destination deleted")
	return nil
}
