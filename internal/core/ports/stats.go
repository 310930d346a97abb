package ports

import (
	"context"
	"time"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// Counter is implemented by every repository that feeds the admin dashboard.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsCache holds the last computed dashboard snapshot.
type StatsCache interface {
	// Get returns (nil, nil) on a miss.
	Get(ctx context.Context) (*domain.AdminStats, error)
	Set(ctx context.Context, stats *domain.AdminStats, ttl time.Duration) error
}

type StatsService interface {
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}
