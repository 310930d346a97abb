package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

type ReviewService struct {
	repo   ports.ReviewRepository
	logger zerolog.Logger
}

func NewReviewService(repo ports.ReviewRepository, logger zerolog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

func (s *ReviewService) Create(ctx context.Context, r *domain.Review) (*domain.InsertResult, error) {
	r.ID = ""
	r.CreatedAt = time.Now().UTC()
	res, err := s.repo.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	s.logger.Debug().Str("product_id", r.ProductID).Msg("review created")
	return res, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	items, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	if items == nil {
		items = []domain.Review{}
	}
	return items, nil
}
