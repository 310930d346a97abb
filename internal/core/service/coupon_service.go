package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// CouponService is plain CRUD; codes and expiry dates are stored as given.
type CouponService struct {
	repo   ports.CouponRepository
	logger zerolog.Logger
}

func NewCouponService(repo ports.CouponRepository, logger zerolog.Logger) *CouponService {
	return &CouponService{repo: repo, logger: logger}
}

func (s *CouponService) Create(ctx context.Context, c *domain.Coupon) (*domain.InsertResult, error) {
	c.ID = ""
	res, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create coupon: %w", err)
	}
	s.logger.Info().Str("coupon_code", c.CouponCode).Msg("coupon created")
	return res, nil
}

func (s *CouponService) List(ctx context.Context) ([]domain.Coupon, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	if items == nil {
		items = []domain.Coupon{}
	}
	return items, nil
}

func (s *CouponService) Update(ctx context.Context, id string, update domain.CouponUpdate) (*domain.UpdateResult, error) {
	res, err := s.repo.Upsert(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update coupon: %w", err)
	}
	return res, nil
}

func (s *CouponService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete coupon: %w", err)
	}
	return res, nil
}
