package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type ReviewService interface {
	Create(ctx context.Context, r *domain.Review) (*domain.InsertResult, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
}

type CouponService interface {
	Create(ctx context.Context, c *domain.Coupon) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Update(ctx context.Context, id string, update domain.CouponUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
