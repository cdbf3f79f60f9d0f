package coupon

import (
	"context"
	"testing"

	"github.com/clubwallet/clubwallet/internal/fault"
)

func TestIssueCoupon(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	ctx := context.Background()

	c, err := svc.Issue(ctx, "member-1", 500)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if c.Amount != 500 || c.MemberID != "member-1" {
		t.Fatalf("unexpected coupon: %+v", c)
	}
	if got := c.ExpiresAt.Sub(c.CreatedAt); got != DefaultValidity {
		t.Fatalf("expected one year validity, got %v", got)
	}

	fetched, err := svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.ID != c.ID {
		t.Fatalf("expected coupon %s, got %s", c.ID, fetched.ID)
	}
}

func TestIssueZeroAmountAllowed(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	c, err := svc.Issue(context.Background(), "member-1", 0)
	if err != nil {
		t.Fatalf("zero amount coupon should issue: %v", err)
	}
	if c.Amount != 0 {
		t.Fatalf("expected amount 0, got %d", c.Amount)
	}
}

func TestIssueNegativeAmountRejected(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.Issue(context.Background(), "member-1", -1)
	if !fault.IsKind(err, fault.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetUnknownCoupon(t *testing.T) {
	svc := NewService(NewMemoryRepository())
	_, err := svc.Get(context.Background(), "missing")
	if !fault.IsKind(err, fault.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
