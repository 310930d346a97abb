package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type SpotlightService struct {
	repo   ports.SpotlightRepository
	logger zerolog.Logger
}

func NewSpotlightService(repo ports.SpotlightRepository, logger zerolog.Logger) *SpotlightService {
	return &SpotlightService{repo: repo, logger: logger}
}

// Create stores a featured entry under the caller's id, or a fresh UUID when
// none is given. The id is not checked against the listings collection.
func (s *SpotlightService) Create(ctx context.Context, sp *domain.Spotlight) (*domain.InsertResult, error) {
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	}
	if sp.FeaturedAt.IsZero() {
		sp.FeaturedAt = time.Now().UTC()
	}
	if sp.Tags == nil {
		sp.Tags = []string{}
	}
	sp.Upvotes = 0
	sp.UpVotedUsers = []string{}

	res, err := s.repo.Create(ctx, sp)
	if err != nil {
		s.logger.Error().Err(err).Str("spotlight_id", sp.ID).Msg("failed to create spotlight")
		return nil, fmt.Errorf("create spotlight: %w", err)
	}
	s.logger.Info().Str("spotlight_id", sp.ID).Msg("spotlight created")
	return res, nil
}

func (s *SpotlightService) List(ctx context.Context) ([]domain.Spotlight, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list spotlights: %w", err)
	}
	if items == nil {
		items = []domain.Spotlight{}
	}
	return items, nil
}

func (s *SpotlightService) Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error) {
	if voter == "" {
		return nil, domain.ErrUnauthorized
	}
	res, err := s.repo.Upvote(ctx, id, voter)
	if err != nil {
		return nil, fmt.Errorf("upvote spotlight: %w", err)
	}
	return res, nil
}

func (s *SpotlightService) Update(ctx context.Context, id string, update domain.SpotlightUpdate) (*domain.UpdateResult, error) {
	res, err := s.repo.Upsert(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update spotlight: %w", err)
	}
	return res, nil
}

func (s *SpotlightService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete spotlight: %w", err)
	}
	return res, nil
}
