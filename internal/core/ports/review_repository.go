package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) (*domain.InsertResult, error)
	// ListByProduct returns reviews in insertion order.
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Count(ctx context.Context) (int64, error)
}
