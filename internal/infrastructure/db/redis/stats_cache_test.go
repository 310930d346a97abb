package redis

import (
	"context"
	"testing"
	"time"

	"github.com/muhammad-sayem/Tech-Horizon-Server/internal/core/domain"
)

func TestStatsCache_RoundTripAndExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewStatsCache(client)
	ctx := context.Background()

	got, err := cache.Get(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected miss, got %+v, %v", got, err)
	}

	want := &domain.AdminStats{UsersCount: 2, ProductsCount: 5, ReviewsCount: 9}
	if err := cache.Set(ctx, want, 15*time.Second); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err = cache.Get(ctx)
	if err != nil || got == nil || *got != *want {
		t.Fatalf("expected %+v, got %+v, %v", want, got, err)
	}

	mr.FastForward(16 * time.Second)
	got, err = cache.Get(ctx)
	if err != nil || got != nil {
		t.Fatalf("expected expiry, got %+v, %v", got, err)
	}
}

func TestStatsCache_CorruptValue(t *testing.T) {
	mr, client := newTestClient(t)
	cache := NewStatsCache(client)
	if err := mr.Set(statsKey, "not-json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := cache.Get(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
