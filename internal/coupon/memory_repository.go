package coupon

import (
	"context"
	"sync"

	"github.com/clubwallet/clubwallet/internal/fault"
)

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]Coupon
}

// NewMemoryRepository constructs an in-memory coupon repository for tests.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]Coupon)}
}

func (r *memoryRepository) Create(_ context.Context, c Coupon) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[c.ID] = c
	return nil
}

func (r *memoryRepository) Coupon(_ context.Context, id string) (Coupon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.storage[id]
	if !ok {
		return Coupon{}, fault.NotFound("coupon")
	}
	return c, nil
}
