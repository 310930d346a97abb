package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// StatsService assembles the admin dashboard counts.
type StatsService struct {
	users    ports.Counter
	products ports.Counter
	reviews  ports.Counter
	cache    ports.StatsCache // optional
	ttl      time.Duration
	logger   zerolog.Logger
}

func NewStatsService(users, products, reviews ports.Counter, cache ports.StatsCache, ttl time.Duration, logger zerolog.Logger) *StatsService {
	return &StatsService{
		users:    users,
		products: products,
		reviews:  reviews,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// AdminStats returns a cached snapshot when one is fresh, otherwise runs the
// three counts concurrently. Cache failures never fail the request.
func (s *StatsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	if s.cache != nil && s.ttl > 0 {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("stats cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	var stats domain.AdminStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.UsersCount, err = s.users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ProductsCount, err = s.products.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.ReviewsCount, err = s.reviews.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("admin stats: %w", err)
	}

	if s.cache != nil && s.ttl > 0 {
		if err := s.cache.Set(ctx, &stats, s.ttl); err != nil {
			s.logger.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return &stats, nil
}
