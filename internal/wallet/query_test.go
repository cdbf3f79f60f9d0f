package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func seedTransactions(t *testing.T, repo Repository, walletID string, specs []Transaction) {
	t.Helper()
	ctx := context.Background()
	if err := repo.CreateWallet(ctx, Wallet{ID: walletID, MemberID: "m1", CreatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("create wallet: %v", err)
	}
	for i, txn := range specs {
		txn.ID = uuid.NewString()
		txn.WalletID = walletID
		txn.MemberID = "m1"
		if err := repo.AppendTransaction(ctx, txn, int64(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}
}

func TestTransactionsFilterByTypeAndRange(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedTransactions(t, repo, "w1", []Transaction{
		{Type: TypeIssue, Status: StatusPaid, WalletAmount: 60, CreatedAt: base},
		{Type: TypeReceive, Status: StatusNone, WalletAmount: 110, CreatedAt: base.Add(time.Hour)},
		{Type: TypeIssue, Status: StatusDue, WalletAmount: -20, CreatedAt: base.Add(2 * time.Hour)},
	})
	ctx := context.Background()

	issues, err := repo.Transactions(ctx, TransactionQuery{WalletID: "w1", Type: TypeIssue})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(issues) != 2 {
		t.Fatalf("expected 2 issue transactions, got %d", len(issues))
	}
	// default sort is newest first
	if !issues[0].CreatedAt.After(issues[1].CreatedAt) {
		t.Fatal("expected descending order by default")
	}

	ranged, err := repo.Transactions(ctx, TransactionQuery{
		WalletID: "w1",
		Start:    base.Add(time.Hour),
		End:      base.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("ranged query: %v", err)
	}
	if len(ranged) != 1 || ranged[0].Type != TypeReceive {
		t.Fatalf("inclusive bounds should match exactly the receive, got %+v", ranged)
	}
}

func TestTransactionsEmptyRangeIsNotAnError(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	seedTransactions(t, repo, "w1", []Transaction{
		{Type: TypeIssue, Status: StatusPaid, WalletAmount: 60, CreatedAt: base},
	})

	out, err := repo.Transactions(context.Background(), TransactionQuery{
		WalletID: "w1",
		Start:    base.Add(24 * time.Hour),
		End:      base.Add(48 * time.Hour),
	})
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty result, got %d", len(out))
	}
}

func TestTransactionsSortAscAndPagination(t *testing.T) {
	repo := NewMemoryRepository()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	var specs []Transaction
	for i := 0; i < 5; i++ {
		specs = append(specs, Transaction{Type: TypeReceive, Status: StatusNone, WalletAmount: int64(i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
	seedTransactions(t, repo, "w1", specs)
	ctx := context.Background()

	page, err := repo.Transactions(ctx, TransactionQuery{WalletID: "w1", SortAsc: true, Offset: 2, Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected page of 2, got %d", len(page))
	}
	if !page[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("unexpected page start: %v", page[0].CreatedAt)
	}

	beyond, err := repo.Transactions(ctx, TransactionQuery{WalletID: "w1", Offset: 50, Limit: 2})
	if err != nil {
		t.Fatalf("out-of-range page: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("out-of-range page must be empty, got %d", len(beyond))
	}
}

func TestSummaryCountsTodaysPostings(t *testing.T) {
	repo := NewMemoryRepository()
	now := time.Now().UTC()
	seedTransactions(t, repo, "w1", []Transaction{
		{Type: TypeIssue, Status: StatusPaid, WalletAmount: 10, CreatedAt: now.AddDate(0, 0, -2)},
		{Type: TypeReceive, Status: StatusNone, WalletAmount: 20, CreatedAt: now},
	})

	s, err := repo.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Total != 2 {
		t.Fatalf("expected total 2, got %d", s.Total)
	}
	if s.Today != 1 {
		t.Fatalf("expected 1 posting today, got %d", s.Today)
	}
}
