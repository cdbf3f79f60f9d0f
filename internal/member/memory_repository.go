package member

import (
	"context"
	"sort"
	"sync"

	"github.com/clubwallet/clubwallet/internal/fault"
)

type memoryRepository struct {
	mu       sync.RWMutex
	storage  map[string]Member
	byMobile map[string]string
}

// NewMemoryRepository constructs an in-memory repository for tests and
// development without a database.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		storage:  make(map[string]Member),
		byMobile: make(map[string]string),
	}
}

func (r *memoryRepository) Create(_ context.Context, m Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.storage[m.ID]; exists {
		return fault.Conflict("member", "member already exists")
	}
	if _, exists := r.byMobile[m.MobileNumber]; exists {
		return fault.Conflict("member", "member already exists")
	}
	r.storage[m.ID] = m
	r.byMobile[m.MobileNumber] = m.ID
	return nil
}

func (r *memoryRepository) Member(_ context.Context, id string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.storage[id]
	if !ok {
		return Member{}, fault.NotFound("member")
	}
	return m, nil
}

func (r *memoryRepository) ByMobile(_ context.Context, mobile string) (Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byMobile[mobile]
	if !ok {
		return Member{}, fault.NotFound("member")
	}
	return r.storage[id], nil
}

func (r *memoryRepository) SetWallet(_ context.Context, memberID, walletID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.storage[memberID]
	if !ok {
		return fault.NotFound("member")
	}
	m.WalletID = walletID
	r.storage[memberID] = m
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	members := make([]Member, 0, len(r.storage))
	for _, m := range r.storage {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		return members[i].CreatedAt.After(members[j].CreatedAt)
	})
	return members, nil
}

func (r *memoryRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.storage)), nil
}
