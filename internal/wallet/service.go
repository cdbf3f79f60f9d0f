package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clubwallet/clubwallet/internal/fault"
	"github.com/clubwallet/clubwallet/internal/member"
)

// Service exposes wallet provisioning and lookup on top of the repository.
// Balance mutation is not exposed here; it belongs to the ledger engine.
type Service struct {
	repo    Repository
	members member.Repository
	cache   *Cache
}

// NewService builds a wallet service instance. cache may be nil.
func NewService(repo Repository, members member.Repository, cache *Cache) *Service {
	return &Service{repo: repo, members: members, cache: cache}
}

// CreateInput captures data required to provision a wallet.
type CreateInput struct {
	MemberID       string
	InitialBalance int64
}

// Create provisions a wallet for the member and records the wallet
// reference on the member. A member owns at most one wallet; the repository
// enforces the existence check and the insert as one atomic unit.
func (s *Service) Create(ctx context.Context, input CreateInput) (Wallet, error) {
	if input.InitialBalance < 0 {
		return Wallet{}, fault.Validation("initialBalance", "initial balance must be non-negative")
	}

	m, err := s.members.Member(ctx, input.MemberID)
	if err != nil {
		return Wallet{}, err
	}

	w := Wallet{
		ID:        uuid.NewString(),
		MemberID:  m.ID,
		Balance:   input.InitialBalance,
		Version:   0,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateWallet(ctx, w); err != nil {
		return Wallet{}, err
	}
	if err := s.members.SetWallet(ctx, m.ID, w.ID); err != nil {
		return Wallet{}, err
	}

	s.cache.Invalidate(ctx, m.ID)
	return w, nil
}

// Get resolves the member's wallet with its transactions, newest first.
func (s *Service) Get(ctx context.Context, memberID string) (Wallet, []Transaction, error) {
	if _, err := s.members.Member(ctx, memberID); err != nil {
		return Wallet{}, nil, err
	}

	w, cached := s.cache.Get(ctx, memberID)
	if !cached {
		var err error
		w, err = s.repo.WalletByMember(ctx, memberID)
		if err != nil {
			return Wallet{}, nil, err
		}
		s.cache.Set(ctx, w)
	}

	transactions, err := s.repo.Transactions(ctx, TransactionQuery{WalletID: w.ID})
	if err != nil {
		return Wallet{}, nil, err
	}
	return w, transactions, nil
}
