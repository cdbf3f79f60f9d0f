package wallet

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return NewCache(rdb, time.Minute), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	w := Wallet{ID: "w1", MemberID: "m1", Balance: 750, Version: 3, CreatedAt: time.Now().UTC()}
	cache.Set(ctx, w)

	got, ok := cache.Get(ctx, "m1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.ID != w.ID || got.Balance != 750 || got.Version != 3 {
		t.Fatalf("unexpected cached wallet: %+v", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, Wallet{ID: "w1", MemberID: "m1", Balance: 750})
	cache.Invalidate(ctx, "m1")

	if _, ok := cache.Get(ctx, "m1"); ok {
		t.Fatal("expected miss after invalidation")
	}
}

func TestCacheExpiry(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	cache.Set(ctx, Wallet{ID: "w1", MemberID: "m1", Balance: 10})
	mr.FastForward(2 * time.Minute)

	if _, ok := cache.Get(ctx, "m1"); ok {
		t.Fatal("expected miss after TTL")
	}
}

func TestNilCacheIsNoOp(t *testing.T) {
	var cache *Cache
	ctx := context.Background()

	cache.Set(ctx, Wallet{MemberID: "m1"})
	cache.Invalidate(ctx, "m1")
	if _, ok := cache.Get(ctx, "m1"); ok {
		t.Fatal("nil cache must always miss")
	}
}
