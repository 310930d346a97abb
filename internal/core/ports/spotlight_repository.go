package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// SpotlightRepository defines persistence for featured listings.
type SpotlightRepository interface {
	Create(ctx context.Context, s *domain.Spotlight) (*domain.InsertResult, error)
	// List returns every entry, most recently featured first.
	List(ctx context.Context) ([]domain.Spotlight, error)
	Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error)
	Upsert(ctx context.Context, id string, update domain.SpotlightUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
