package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type CouponRepository interface {
	Create(ctx context.Context, c *domain.Coupon) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Coupon, error)
	Upsert(ctx context.Context, id string, update domain.CouponUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
