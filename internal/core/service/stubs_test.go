package service

import (
	"context"
	"strconv"
	"sync"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory repositories shared by the service tests.
// ---------------------------------------------------------------------------

type stubAccountRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*domain.Account
	nextID    int
	findErr   error
	createErr error
	// raceOnCreate simulates a concurrent insert winning the unique index.
	raceOnCreate bool
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}
	if r.raceOnCreate {
		return nil, domain.ErrAccountExists
	}
	if _, ok := r.byEmail[a.Email]; ok {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	clone := *a
	clone.ID = strconv.Itoa(r.nextID)
	r.byEmail[a.Email] = &clone
	return &domain.InsertResult{Acknowledged: true, InsertedID: clone.ID}, nil
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Account, 0, len(r.byEmail))
	for _, a := range r.byEmail {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAccountRepo) byID(id string) *domain.Account {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a
		}
	}
	return nil
}

func (r *stubAccountRepo) SetSubscribed(_ context.Context, id string) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID(id)
	if a == nil {
		return nil, domain.ErrAccountNotFound
	}
	a.Subscribed = true
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubAccountRepo) SetRole(_ context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := r.byID(id)
	if a == nil {
		return nil, domain.ErrAccountNotFound
	}
	a.Role = role
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubAccountRepo) SetRoleByEmail(_ context.Context, email string, role domain.Role) (*domain.UpdateResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Role = role
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubAccountRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byEmail)), nil
}

type stubListingRepo struct {
	created    []*domain.Listing
	lastFilter ports.ListingFilter
	lastPage   int
	lastLimit  int
	found      []domain.Listing
	total      int64
	upvoteErr  error
	upserted   map[string]domain.ListingUpdate
	statuses   map[string]domain.ListingStatus
	err        error
}

func newStubListingRepo() *stubListingRepo {
	return &stubListingRepo{
		upserted: make(map[string]domain.ListingUpdate),
		statuses: make(map[string]domain.ListingStatus),
	}
}

func (r *stubListingRepo) Create(_ context.Context, l *domain.Listing) (*domain.InsertResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	clone := *l
	r.created = append(r.created, &clone)
	return &domain.InsertResult{Acknowledged: true, InsertedID: strconv.Itoa(len(r.created))}, nil
}

func (r *stubListingRepo) FindByID(_ context.Context, id string) (*domain.Listing, error) {
	for _, l := range r.found {
		if l.ID == id {
			clone := l
			return &clone, nil
		}
	}
	return nil, domain.ErrListingNotFound
}

func (r *stubListingRepo) Find(_ context.Context, filter ports.ListingFilter) ([]domain.Listing, error) {
	r.lastFilter = filter
	return r.found, r.err
}

func (r *stubListingRepo) Page(_ context.Context, filter ports.ListingFilter, page, limit int) ([]domain.Listing, int64, error) {
	r.lastFilter, r.lastPage, r.lastLimit = filter, page, limit
	return r.found, r.total, r.err
}

func (r *stubListingRepo) SetStatus(_ context.Context, id string, status domain.ListingStatus) (*domain.UpdateResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.statuses[id] = status
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubListingRepo) MarkReported(_ context.Context, _ string) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, r.err
}

func (r *stubListingRepo) MarkFeatured(_ context.Context, _ string) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, r.err
}

func (r *stubListingRepo) Upvote(_ context.Context, _, _ string) (*domain.UpdateResult, error) {
	if r.upvoteErr != nil {
		return nil, r.upvoteErr
	}
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (r *stubListingRepo) Upsert(_ context.Context, id string, u domain.ListingUpdate) (*domain.UpdateResult, error) {
	r.upserted[id] = u
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
}

func (r *stubListingRepo) Delete(_ context.Context, _ string) (*domain.DeleteResult, error) {
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, r.err
}

func (r *stubListingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.created)), r.err
}

type stubCounter struct {
	n   int64
	err error
}

func (c stubCounter) Count(_ context.Context) (int64, error) { return c.n, c.err }
