package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/clubwallet/clubwallet/internal/fault"
	"github.com/clubwallet/clubwallet/internal/wallet"
)

func TestQueryFiltersAndPaginates(t *testing.T) {
	f := newFixture(t, 1_000)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := f.engine.Post(ctx, PostInput{MemberID: f.member.ID, Type: wallet.TypeIssue, PayableAmount: 10, CouponAmount: 5}); err != nil {
			t.Fatalf("post issue %d: %v", i, err)
		}
	}
	if _, err := f.engine.Post(ctx, PostInput{MemberID: f.member.ID, Type: wallet.TypeReceive, PayableAmount: 0, CouponAmount: 50}); err != nil {
		t.Fatalf("post receive: %v", err)
	}

	issues, err := f.engine.Query(ctx, QueryInput{MemberID: f.member.ID, Type: wallet.TypeIssue})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}

	all, err := f.engine.Query(ctx, QueryInput{MemberID: f.member.ID, SortBy: "asc"})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 transactions, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.Before(all[i-1].CreatedAt) {
			t.Fatal("asc sort violated")
		}
	}

	paged, err := f.engine.Query(ctx, QueryInput{MemberID: f.member.ID, Page: 2, PageSize: 3})
	if err != nil {
		t.Fatalf("paged query: %v", err)
	}
	if len(paged) != 1 {
		t.Fatalf("expected 1 transaction on page 2, got %d", len(paged))
	}

	beyond, err := f.engine.Query(ctx, QueryInput{MemberID: f.member.ID, Page: 9})
	if err != nil {
		t.Fatalf("out-of-range page: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d", len(beyond))
	}
}

func TestQueryExcludingDateRangeIsEmpty(t *testing.T) {
	f := newFixture(t, 1_000)
	ctx := context.Background()

	if _, err := f.engine.Post(ctx, PostInput{MemberID: f.member.ID, Type: wallet.TypeIssue, PayableAmount: 10, CouponAmount: 0}); err != nil {
		t.Fatalf("post: %v", err)
	}

	past := time.Now().UTC().AddDate(-1, 0, 0)
	out, err := f.engine.Query(ctx, QueryInput{MemberID: f.member.ID, Start: past, End: past.Add(time.Hour)})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected no transactions, got %d", len(out))
	}
}

func TestQueryUnknownMember(t *testing.T) {
	f := newFixture(t, 0)
	_, err := f.engine.Query(context.Background(), QueryInput{MemberID: "missing"})
	if !fault.IsKind(err, fault.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSummary(t *testing.T) {
	f := newFixture(t, 1_000)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.engine.Post(ctx, PostInput{MemberID: f.member.ID, Type: wallet.TypeReceive, PayableAmount: 0, CouponAmount: 10}); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}

	s, err := f.engine.Summary(ctx)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Total != 2 || s.Today != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
}
