package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// ListAcceptedInput carries the query of GET /products. Zero values fall back
// to page 1 and the default page size.
type ListAcceptedInput struct {
	Page   int
	Limit  int
	Search string
}

// ListingPage is one page of accepted listings.
type ListingPage struct {
	Products []domain.Listing
	Total    int64
	Page     int
	Limit    int
}

type ListingService interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error)
	Get(ctx context.Context, id string) (*domain.Listing, error)
	ListAll(ctx context.Context) ([]domain.Listing, error)
	ListAccepted(ctx context.Context, in ListAcceptedInput) (*ListingPage, error)
	ListReported(ctx context.Context) ([]domain.Listing, error)
	ListByOwner(ctx context.Context, email string) ([]domain.Listing, error)
	Trending(ctx context.Context) ([]domain.Listing, error)

	Accept(ctx context.Context, id string) (*domain.UpdateResult, error)
	Reject(ctx context.Context, id string) (*domain.UpdateResult, error)
	Report(ctx context.Context, id string) (*domain.UpdateResult, error)
	Feature(ctx context.Context, id string) (*domain.UpdateResult, error)
	Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error)
	Update(ctx context.Context, id string, update domain.ListingUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
}
