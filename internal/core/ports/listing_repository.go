package ports

import (
	"context"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

// ListingFilter selects listings. Empty fields do not filter.
type ListingFilter struct {
	Status     domain.ListingStatus
	Reported   bool   // only reported listings
	OwnerEmail string // exact match on owner.email
	Search     string // case-insensitive substring match on tags
	ByUpvotes  bool   // sort by upvotes desc instead of insertion order
}

// ListingRepository defines persistence for listings.
type ListingRepository interface {
	Create(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error)
	FindByID(ctx context.Context, id string) (*domain.Listing, error)
	Find(ctx context.Context, filter ListingFilter) ([]domain.Listing, error)
	// Page returns one page of matches plus the total match count. The two
	// are separate queries and may disagree under concurrent writes.
	Page(ctx context.Context, filter ListingFilter, page, limit int) ([]domain.Listing, int64, error)
	SetStatus(ctx context.Context, id string, status domain.ListingStatus) (*domain.UpdateResult, error)
	MarkReported(ctx context.Context, id string) (*domain.UpdateResult, error)
	MarkFeatured(ctx context.Context, id string) (*domain.UpdateResult, error)
	// Upvote adds voter and increments the counter in one conditional update.
	// It returns domain.ErrAlreadyUpvoted or domain.ErrListingNotFound.
	Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error)
	Upsert(ctx context.Context, id string, update domain.ListingUpdate) (*domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (*domain.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}
