package coupon

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// DefaultValidity is how long an issued coupon stays redeemable.
const DefaultValidity = 365 * 24 * time.Hour

// Coupon is a fixed-amount subsidy record linked to exactly one transaction.
// Coupons are never mutated or deleted once issued.
type Coupon struct {
	ID        string
	MemberID  string
	Amount    int64
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Issuer creates coupon records on behalf of the ledger engine.
type Issuer interface {
	Issue(ctx context.Context, memberID string, amount int64) (Coupon, error)
}

// Service is the default Issuer implementation.
type Service struct {
	repo Repository
}

// NewService builds a coupon service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Issue creates a coupon for the member. A zero amount is allowed so every
// transaction keeps a coupon reference.
func (s *Service) Issue(ctx context.Context, memberID string, amount int64) (Coupon, error) {
	if amount < 0 {
		return Coupon{}, fault.Validation("couponAmount", "coupon amount must be non-negative")
	}
	now := time.Now().UTC()
	c := Coupon{
		ID:        uuid.NewString(),
		MemberID:  memberID,
		Amount:    amount,
		ExpiresAt: now.Add(DefaultValidity),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Coupon{}, err
	}
	return c, nil
}

// Get resolves a coupon by identifier.
func (s *Service) Get(ctx context.Context, id string) (Coupon, error) {
	return s.repo.Coupon(ctx, id)
}
