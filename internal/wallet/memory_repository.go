package wallet

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/clubwallet/clubwallet/internal/fault"
)

type memoryRepository struct {
	mu           sync.RWMutex
	wallets      map[string]Wallet
	byMember     map[string]string
	transactions []Transaction
}

// NewMemoryRepository constructs a concurrency-safe in-memory repository
// useful for unit tests and development without a database.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		wallets:  make(map[string]Wallet),
		byMember: make(map[string]string),
	}
}

func (r *memoryRepository) CreateWallet(_ context.Context, w Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byMember[w.MemberID]; exists {
		return fault.Conflict("wallet", "member already owns a wallet")
	}
	r.wallets[w.ID] = w
	r.byMember[w.MemberID] = w.ID
	return nil
}

func (r *memoryRepository) Wallet(_ context.Context, id string) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[id]
	if !ok {
		return Wallet{}, fault.NotFound("wallet")
	}
	return w, nil
}

func (r *memoryRepository) WalletByMember(_ context.Context, memberID string) (Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byMember[memberID]
	if !ok {
		return Wallet{}, fault.NotFound("wallet")
	}
	return r.wallets[id], nil
}

func (r *memoryRepository) AppendTransaction(_ context.Context, txn Transaction, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[txn.WalletID]
	if !ok {
		return fault.NotFound("wallet")
	}
	if w.Version != expectedVersion {
		return ErrStaleWallet
	}
	w.Balance = txn.WalletAmount
	w.Version++
	r.wallets[txn.WalletID] = w
	r.transactions = append(r.transactions, txn)
	return nil
}

func (r *memoryRepository) Transactions(_ context.Context, q TransactionQuery) ([]Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Transaction, 0)
	for _, txn := range r.transactions {
		if txn.WalletID != q.WalletID {
			continue
		}
		if q.Type != "" && txn.Type != q.Type {
			continue
		}
		if !q.Start.IsZero() && txn.CreatedAt.Before(q.Start) {
			continue
		}
		if !q.End.IsZero() && txn.CreatedAt.After(q.End) {
			continue
		}
		matched = append(matched, txn)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if q.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if q.Offset >= len(matched) {
		return []Transaction{}, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (r *memoryRepository) Summary(_ context.Context) (Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	s := Summary{Total: int64(len(r.transactions))}
	for _, txn := range r.transactions {
		if !txn.CreatedAt.Before(dayStart) {
			s.Today++
		}
	}
	return s, nil
}
