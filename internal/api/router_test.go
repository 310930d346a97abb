package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/api/handler"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/ports"
	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/service"
)

const testSecret = "router-test-secret"

type roleTable map[string]domain.Role

func (r roleTable) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	role, ok := r[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return &domain.Account{Email: email, Role: role}, nil
}

type routerAccounts struct {
	promoted []string
}

func (a *routerAccounts) Create(context.Context, ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	return &ports.CreateAccountResult{Existed: true}, nil
}

func (a *routerAccounts) Role(context.Context, string) (domain.Role, bool, error) {
	return "", false, nil
}

func (a *routerAccounts) List(context.Context) ([]domain.Account, error) {
	return []domain.Account{}, nil
}

func (a *routerAccounts) MarkSubscribed(context.Context, string) (*domain.UpdateResult, error) {
	return &domain.UpdateResult{Acknowledged: true}, nil
}

func (a *routerAccounts) Promote(_ context.Context, id string, _ domain.Role) (*domain.UpdateResult, error) {
	a.promoted = append(a.promoted, id)
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

type tokenIssuer struct{}

func (tokenIssuer) IssueToken(context.Context, ports.TokenRequest) (string, error) {
	return "signed", nil
}

type countingLimiter struct {
	limit int
	calls int
}

func (l *countingLimiter) Allow(context.Context, string) (bool, error) {
	l.calls++
	return l.calls <= l.limit, nil
}

func bearer(t *testing.T, email string) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + tok
}

// recordingListings keeps what the listing service hands to the store.
// Methods the tests never reach stay on the nil embedded interface.
type recordingListings struct {
	ports.ListingRepository
	created  []domain.Listing
	upserted map[string]domain.ListingUpdate
}

func (r *recordingListings) Create(_ context.Context, l *domain.Listing) (*domain.InsertResult, error) {
	r.created = append(r.created, *l)
	return &domain.InsertResult{Acknowledged: true, InsertedID: "507f1f77bcf86cd799439011"}, nil
}

func (r *recordingListings) Upsert(_ context.Context, id string, u domain.ListingUpdate) (*domain.UpdateResult, error) {
	if r.upserted == nil {
		r.upserted = map[string]domain.ListingUpdate{}
	}
	r.upserted[id] = u
	return &domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func newTestRouter(accounts *routerAccounts, limiter *countingLimiter, policy Policy) http.Handler {
	return newListingRouter(accounts, limiter, policy, &recordingListings{})
}

func newListingRouter(accounts *routerAccounts, limiter *countingLimiter, policy Policy, store *recordingListings) http.Handler {
	return NewRouter(Deps{
		Logger:      zerolog.Nop(),
		JWTSecret:   testSecret,
		TokenPolicy: "claim",
		Policy:      policy,
		Roles: roleTable{
			"admin@example.com": domain.RoleAdmin,
			"user@example.com":  domain.RoleUser,
		},
		Auth:     tokenIssuer{},
		Accounts: accounts,
		Listings: service.NewListingService(store, service.ListingOptions{
			LockModeration: policy.EnforceModerationRoles,
		}, zerolog.Nop()),
		Limiter: limiter,
		Pingers: map[string]handler.Pinger{
			"mongodb": func(context.Context) error { return nil },
		},
		Registry: prometheus.NewRegistry(),
	})
}

func serve(h http.Handler, method, target, auth string) *httptest.ResponseRecorder {
	return serveJSON(h, method, target, auth, "")
}

func serveJSON(h http.Handler, method, target, auth, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RootBanner(t *testing.T) {
	h := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{})

	rec := serve(h, http.MethodGet, "/", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tech Horizon.......", rec.Body.String())
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestRouter_Health(t *testing.T) {
	h := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{})

	assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/health", "").Code)

	rec := serve(h, http.MethodGet, "/health/ready", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mongodb":{"status":"ok"}`)
}

func TestRouter_PromoteRequiresAdmin(t *testing.T) {
	const target = "/users/admin/507f1f77bcf86cd799439011"

	tests := []struct {
		name     string
		auth     string
		wantCode int
	}{
		{name: "no token", wantCode: http.StatusUnauthorized},
		{name: "user role", auth: bearer(t, "user@example.com"), wantCode: http.StatusForbidden},
		{name: "unknown account", auth: bearer(t, "ghost@example.com"), wantCode: http.StatusForbidden},
		{name: "admin role", auth: bearer(t, "admin@example.com"), wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := &routerAccounts{}
			h := newTestRouter(accounts, &countingLimiter{limit: 10}, Policy{})

			rec := serve(h, http.MethodPatch, target, tt.auth)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, []string{"507f1f77bcf86cd799439011"}, accounts.promoted)
			} else {
				assert.Empty(t, accounts.promoted)
			}
		})
	}
}

func TestRouter_UsersListPolicy(t *testing.T) {
	userToken := bearer(t, "user@example.com")

	open := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{})
	assert.Equal(t, http.StatusUnauthorized, serve(open, http.MethodGet, "/users", "").Code)
	assert.Equal(t, http.StatusOK, serve(open, http.MethodGet, "/users", userToken).Code)

	gated := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{UsersListRequiresAdmin: true})
	assert.Equal(t, http.StatusForbidden, serve(gated, http.MethodGet, "/users", userToken).Code)
}

func TestRouter_UpvoteRequiresToken(t *testing.T) {
	h := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{})

	rec := serve(h, http.MethodPatch, "/product/upvote/507f1f77bcf86cd799439011", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"unauthorized Access!!"}`, rec.Body.String())
}

func TestRouter_ModerationEnforcement(t *testing.T) {
	h := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{EnforceModerationRoles: true})

	rec := serve(h, http.MethodPatch, "/product/accept-status/507f1f77bcf86cd799439011", bearer(t, "user@example.com"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(h, http.MethodGet, "/admin-stats", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ModerationEnforcement_ListingWrites(t *testing.T) {
	const id = "507f1f77bcf86cd799439011"
	userToken := bearer(t, "user@example.com")

	t.Run("anonymous update", func(t *testing.T) {
		store := &recordingListings{}
		h := newListingRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{EnforceModerationRoles: true}, store)

		rec := serveJSON(h, http.MethodPut, "/product/update/"+id, "", `{"status":"Accepted","featured":true}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, store.upserted)
	})

	t.Run("user update drops moderation fields", func(t *testing.T) {
		store := &recordingListings{}
		h := newListingRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{EnforceModerationRoles: true}, store)

		rec := serveJSON(h, http.MethodPut, "/product/update/"+id, userToken,
			`{"productName":"Renamed","status":"Accepted","featured":true,"reported":false}`)

		require.Equal(t, http.StatusOK, rec.Code)
		got := store.upserted[id]
		assert.Equal(t, "Renamed", got.ProductName)
		assert.Empty(t, got.Status)
		assert.Nil(t, got.Featured)
		assert.Nil(t, got.Reported)
	})

	t.Run("user submission cannot self-accept", func(t *testing.T) {
		store := &recordingListings{}
		h := newListingRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{EnforceModerationRoles: true}, store)

		rec := serveJSON(h, http.MethodPost, "/products", userToken,
			`{"productName":"Gizmo","status":"Accepted","featured":true}`)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, store.created, 1)
		assert.Equal(t, domain.StatusPending, store.created[0].Status)
		assert.False(t, store.created[0].Featured)
	})

	t.Run("open policy keeps submitted status", func(t *testing.T) {
		store := &recordingListings{}
		h := newListingRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{}, store)

		rec := serveJSON(h, http.MethodPut, "/product/update/"+id, "", `{"status":"Accepted"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.StatusAccepted, store.upserted[id].Status)
	})
}

func TestRouter_TokenRouteIsRateLimited(t *testing.T) {
	limiter := &countingLimiter{limit: 2}
	h := newTestRouter(&routerAccounts{}, limiter, Policy{})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newTestRouter(&routerAccounts{}, &countingLimiter{limit: 10}, Policy{})

	rec := serve(h, http.MethodGet, "/does-not-exist", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
