package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

type SpotlightService interface {
	Create(ctx context.Context, s *domain.Spotlight) (*domain.InsertResult, error)
	List(ctx context.Context) ([]domain.Spotlight, error)
	Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error)
	Update(ctx context.Context, id string, update domain.SpotlightUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
