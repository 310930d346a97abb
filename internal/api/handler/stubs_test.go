package handler

import (
	"context"
	"io"
	"net/http/httptest"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
)

func newTestContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	issueFn func(ctx context.Context, req ports.TokenRequest) (string, error)
}

func (s *stubAuthService) IssueToken(ctx context.Context, req ports.TokenRequest) (string, error) {
	return s.issueFn(ctx, req)
}

type stubAccountService struct {
	createFn  func(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error)
	roleFn    func(ctx context.Context, email string) (domain.Role, bool, error)
	promoteFn func(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error)
}

func (s *stubAccountService) Create(ctx context.Context, in ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	return s.createFn(ctx, in)
}

func (s *stubAccountService) Role(ctx context.Context, email string) (domain.Role, bool, error) {
	return s.roleFn(ctx, email)
}

func (s *stubAccountService) List(context.Context) ([]domain.Account, error) {
	return []domain.Account{}, nil
}

func (s *stubAccountService) MarkSubscribed(context.Context, string) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubAccountService) Promote(ctx context.Context, id string, role domain.Role) (*domain.UpdateResult, error) {
	return s.promoteFn(ctx, id, role)
}

// stubListingService answers every call with an empty success unless the
// matching fn is set.
type stubListingService struct {
	createFn       func(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error)
	getFn          func(ctx context.Context, id string) (*domain.Listing, error)
	listAcceptedFn func(ctx context.Context, in ports.ListAcceptedInput) (*ports.ListingPage, error)
	upvoteFn       func(ctx context.Context, id, voter string) (*domain.UpdateResult, error)
	updateFn       func(ctx context.Context, id string, u domain.ListingUpdate) (*domain.UpdateResult, error)
}

var okUpdate = &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}

func (s *stubListingService) Create(ctx context.Context, l *domain.Listing) (*domain.InsertResult, error) {
	return s.createFn(ctx, l)
}

func (s *stubListingService) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.getFn(ctx, id)
}

func (s *stubListingService) ListAll(context.Context) ([]domain.Listing, error) {
	return []domain.Listing{}, nil
}

func (s *stubListingService) ListAccepted(ctx context.Context, in ports.ListAcceptedInput) (*ports.ListingPage, error) {
	return s.listAcceptedFn(ctx, in)
}

func (s *stubListingService) ListReported(context.Context) ([]domain.Listing, error) {
	return []domain.Listing{}, nil
}

func (s *stubListingService) ListByOwner(context.Context, string) ([]domain.Listing, error) {
	return []domain.Listing{}, nil
}

func (s *stubListingService) Trending(context.Context) ([]domain.Listing, error) {
	return []domain.Listing{}, nil
}

func (s *stubListingService) Accept(context.Context, string) (*domain.UpdateResult, error) {
	return okUpdate, nil
}

func (s *stubListingService) Reject(context.Context, string) (*domain.UpdateResult, error) {
	return okUpdate, nil
}

func (s *stubListingService) Report(context.Context, string) (*domain.UpdateResult, error) {
	return okUpdate, nil
}

func (s *stubListingService) Feature(context.Context, string) (*domain.UpdateResult, error) {
	return okUpdate, nil
}

func (s *stubListingService) Upvote(ctx context.Context, id, voter string) (*domain.UpdateResult, error) {
	return s.upvoteFn(ctx, id, voter)
}

func (s *stubListingService) Update(ctx context.Context, id string, u domain.ListingUpdate) (*domain.UpdateResult, error) {
	return s.updateFn(ctx, id, u)
}

func (s *stubListingService) Delete(context.Context, string) (*domain.DeleteResult, error) {
	return &domain.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type stubPaymentService struct {
	createFn func(ctx context.Context, price decimal.Decimal) (string, error)
}

func (s *stubPaymentService) CreatePaymentIntent(ctx context.Context, price decimal.Decimal) (string, error) {
	return s.createFn(ctx, price)
}
