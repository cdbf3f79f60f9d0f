package ledger

import (
	"context"
	"time"

	"github.com/clubwallet/clubwallet/internal/wallet"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// QueryInput filters a member's transaction history. Page numbering starts
// at 1; a page past the end yields an empty result, not an error. Whether
// an empty result means "nothing matched" or "wrong member" is the caller's
// call; the engine only distinguishes an unknown member.
type QueryInput struct {
	MemberID string
	Type     string
	Start    time.Time
	End      time.Time
	SortBy   string // "asc" for oldest first, anything else newest first
	Page     int
	PageSize int
}

// Query returns the member's transactions matching the filters.
func (e *Engine) Query(ctx context.Context, in QueryInput) ([]wallet.Transaction, error) {
	m, err := e.members.Member(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	w, err := e.wallets.WalletByMember(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return e.wallets.Transactions(ctx, wallet.TransactionQuery{
		WalletID: w.ID,
		Type:     in.Type,
		Start:    in.Start,
		End:      in.End,
		SortAsc:  in.SortBy == "asc",
		Offset:   (page - 1) * size,
		Limit:    size,
	})
}

// Summary reports overall posting volume across all wallets.
func (e *Engine) Summary(ctx context.Context) (wallet.Summary, error) {
	return e.wallets.Summary(ctx)
}
