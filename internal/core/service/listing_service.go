package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

const (
	defaultPageSize = 6
	maxPageSize     = 100
)

// ListingOptions tunes listing defaults. Zero values fall back to Pending,
// six items per page and a cap of one hundred.
//
// With LockModeration set, submissions and generic updates cannot touch the
// status, reported or featured flags; only the dedicated moderation routes can.
type ListingOptions struct {
	DefaultStatus  domain.ListingStatus
	PageSize       int
	MaxPageSize    int
	LockModeration bool
}

type ListingService struct {
	repo   ports.ListingRepository
	opts   ListingOptions
	logger zerolog.Logger
}

func NewListingService(repo ports.ListingRepository, opts ListingOptions, logger zerolog.Logger) *ListingService {
	if !opts.DefaultStatus.Valid() {
		opts.DefaultStatus = domain.StatusPending
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.MaxPageSize <= 0 {
		opts.MaxPageSize = maxPageSize
	}
	return &ListingService{repo: repo, opts: opts, logger: logger}
}

// Create stores a new submission. Upvote bookkeeping always starts empty.
func (s *ListingService) Create(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error) {
	if s.opts.LockModeration {
		l.Status = s.opts.DefaultStatus
		l.Reported = false
		l.Featured = false
	}
	if l.Status == "" {
		l.Status = s.opts.DefaultStatus
	}
	if !l.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	l.ID = ""
	l.Upvotes = 0
	l.UpVotedUsers = []string{}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}

	res, err := s.repo.Create(ctx, l)
	if err != nil {
		s.logger.Error().Err(err).Str("owner", l.Owner.Email).Msg("failed to create listing")
		return nil, fmt.Errorf("create listing: %w", err)
	}
	s.logger.Info().Str("listing_id", res.InsertedID).Str("status", string(l.Status)).Msg("listing created")
	return res, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get listing: %w", err)
	}
	return l, nil
}

func (s *ListingService) ListAll(ctx context.Context) ([]domain.Listing, error) {
	return s.find(ctx, "list listings", ports.ListingFilter{})
}

// ListAccepted pages through accepted listings, optionally filtered by a
// case-insensitive tag search.
func (s *ListingService) ListAccepted(ctx context.Context, in ports.ListAcceptedInput) (*ports.ListingPage, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	limit := in.Limit
	if limit < 1 {
		limit = s.opts.PageSize
	}
	if limit > s.opts.MaxPageSize {
		limit = s.opts.MaxPageSize
	}
	// The skip offset must stay within what the store accepts.
	if int64(page-1) > math.MaxInt32/int64(limit) {
		return nil, domain.ErrPageOutOfRange
	}

	filter := ports.ListingFilter{
		Status: domain.StatusAccepted,
		Search: strings.TrimSpace(in.Search),
	}
	items, total, err := s.repo.Page(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list accepted listings: %w", err)
	}
	if items == nil {
		items = []domain.Listing{}
	}
	return &ports.ListingPage{Products: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *ListingService) ListReported(ctx context.Context) ([]domain.Listing, error) {
	return s.find(ctx, "list reported listings", ports.ListingFilter{Reported: true})
}

func (s *ListingService) ListByOwner(ctx context.Context, email string) ([]domain.Listing, error) {
	return s.find(ctx, "list owner listings", ports.ListingFilter{OwnerEmail: email})
}

// Trending returns accepted listings, most upvoted first.
func (s *ListingService) Trending(ctx context.Context) ([]domain.Listing, error) {
	return s.find(ctx, "list trending listings", ports.ListingFilter{Status: domain.StatusAccepted, ByUpvotes: true})
}

func (s *ListingService) find(ctx context.Context, op string, filter ports.ListingFilter) ([]domain.Listing, error) {
	items, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if items == nil {
		items = []domain.Listing{}
	}
	return items, nil
}

func (s *ListingService) Accept(ctx context.Context, id string) (*domain.UpdateResult, error) {
	return s.setStatus(ctx, id, domain.StatusAccepted)
}

func (s *ListingService) Reject(ctx context.Context, id string) (*domain.UpdateResult, error) {
	return s.setStatus(ctx, id, domain.StatusRejected)
}

func (s *ListingService) setStatus(ctx context.Context, id string, status domain.ListingStatus) (*domain.UpdateResult, error) {
	res, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("set listing status: %w", err)
	}
	s.logger.Info().Str("listing_id", id).Str("status", string(status)).Msg("listing moderated")
	return res, nil
}

func (s *ListingService) Report(ctx context.Context, id string) (*domain.UpdateResult, error) {
	res, err := s.repo.MarkReported(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("report listing: %w", err)
	}
	s.logger.Info().Str("listing_id", id).Msg("listing reported")
	return res, nil
}

func (s *ListingService) Feature(ctx context.Context, id string) (*domain.UpdateResult, error) {
	res, err := s.repo.MarkFeatured(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("feature listing: %w", err)
	}
	return res, nil
}

// Upvote records one vote per voter. A repeated vote yields
// domain.ErrAlreadyUpvoted without changing the listing.
func (s *ListingService) Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error) {
	if voter == "" {
		return nil, domain.ErrUnauthorized
	}
	res, err := s.repo.Upvote(ctx, id, voter)
	if err != nil {
		return nil, fmt.Errorf("upvote listing: %w", err)
	}
	return res, nil
}

// Update upserts the descriptive fields of a listing.
func (s *ListingService) Update(ctx context.Context, id string, update domain.ListingUpdate) (*domain.UpdateResult, error) {
	if s.opts.LockModeration {
		update.Status = ""
		update.Reported = nil
		update.Featured = nil
	}
	if update.Status != "" && !update.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	res, err := s.repo.Upsert(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("update listing: %w", err)
	}
	return res, nil
}

// Delete removes a listing. Reviews that reference it are left in place.
func (s *ListingService) Delete(ctx context.Context, id string) (*domain.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete listing: %w", err)
	}
	if res.DeletedCount > 0 {
		s.logger.Info().Str("listing_id", id).Msg("listing deleted")
	}
	return res, nil
}
