package wallet

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "wallet:member:"

// Cache is a read-through wallet cache keyed by member. It is a pure
// performance layer: misses and redis failures fall back to the store, and
// every mutating operation invalidates the member's entry. A nil *Cache is
// a valid no-op.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache builds a wallet cache with the given TTL.
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	if rdb == nil {
		return nil
	}
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns the cached wallet for the member, if present.
func (c *Cache) Get(ctx context.Context, memberID string) (Wallet, bool) {
	if c == nil {
		return Wallet{}, false
	}
	payload, err := c.rdb.Get(ctx, cacheKeyPrefix+memberID).Bytes()
	if err != nil {
		return Wallet{}, false
	}
	var w Wallet
	if err := json.Unmarshal(payload, &w); err != nil {
		return Wallet{}, false
	}
	return w, true
}

// Set stores the wallet under the member's key. Failures are ignored.
func (c *Cache) Set(ctx context.Context, w Wallet) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(w)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKeyPrefix+w.MemberID, payload, c.ttl)
}

// Invalidate drops the member's cached wallet.
func (c *Cache) Invalidate(ctx context.Context, memberID string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, cacheKeyPrefix+memberID)
}
