package ledger

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/clubwallet/clubwallet/internal/coupon"
	"github.com/clubwallet/clubwallet/internal/fault"
	"github.com/clubwallet/clubwallet/internal/logging"
	"github.com/clubwallet/clubwallet/internal/member"
	"github.com/clubwallet/clubwallet/internal/wallet"
)

// commitRetries bounds the optimistic-concurrency retry loop. Each retry
// re-reads the wallet and recomputes the posting from the fresh balance.
const commitRetries = 10

// Engine validates and posts wallet transactions, deriving balance and
// settlement status deterministically.
type Engine struct {
	wallets wallet.Repository
	members member.Repository
	coupons coupon.Issuer
	cache   *wallet.Cache
	logger  *slog.Logger
}

// NewEngine builds a ledger engine. cache and logger may be nil.
func NewEngine(wallets wallet.Repository, members member.Repository, coupons coupon.Issuer, cache *wallet.Cache, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Engine{wallets: wallets, members: members, coupons: coupons, cache: cache, logger: logger}
}

// PostInput captures a posting request.
type PostInput struct {
	MemberID      string
	Type          string
	PayableAmount int64
	CouponAmount  int64
}

// Post validates the request, resolves the member's wallet, issues a coupon
// for the coupon amount, computes the new balance and status, and commits
// the transaction atomically with the balance update.
//
// Delta rules: an issue debits payable plus coupon; a receive credits the
// coupon amount only (the payable amount is recorded but does not move the
// balance). An issue that drives the balance negative is committed with
// status due rather than rejected.
func (e *Engine) Post(ctx context.Context, in PostInput) (wallet.Transaction, error) {
	if in.Type != wallet.TypeIssue && in.Type != wallet.TypeReceive {
		return wallet.Transaction{}, fault.Validation("type", "type must be issue or receive")
	}
	if in.PayableAmount < 0 {
		return wallet.Transaction{}, fault.Validation("payableAmount", "payable amount must be non-negative")
	}
	if in.CouponAmount < 0 {
		return wallet.Transaction{}, fault.Validation("couponAmount", "coupon amount must be non-negative")
	}

	m, err := e.members.Member(ctx, in.MemberID)
	if err != nil {
		return wallet.Transaction{}, err
	}
	w, err := e.wallets.WalletByMember(ctx, m.ID)
	if err != nil {
		return wallet.Transaction{}, err
	}

	// Issued once per posting, zero amounts included, so every transaction
	// carries a coupon reference. Coupons are never rolled back.
	cpn, err := e.coupons.Issue(ctx, m.ID, in.CouponAmount)
	if err != nil {
		return wallet.Transaction{}, err
	}

	for attempt := 0; attempt < commitRetries; attempt++ {
		newBalance := w.Balance + delta(in)
		txn := wallet.Transaction{
			ID:            uuid.NewString(),
			WalletID:      w.ID,
			MemberID:      m.ID,
			CouponID:      cpn.ID,
			PayableAmount: in.PayableAmount,
			CouponAmount:  in.CouponAmount,
			WalletAmount:  newBalance,
			Type:          in.Type,
			Status:        status(in.Type, newBalance),
			CreatedAt:     time.Now().UTC(),
		}

		err := e.wallets.AppendTransaction(ctx, txn, w.Version)
		if err == nil {
			e.cache.Invalidate(ctx, m.ID)
			e.logger.Info("transaction posted",
				"transaction_id", txn.ID,
				"wallet_id", w.ID,
				"member_id", m.ID,
				"type", txn.Type,
				"status", txn.Status,
				"wallet_amount", txn.WalletAmount,
			)
			return txn, nil
		}
		if !errors.Is(err, wallet.ErrStaleWallet) {
			return wallet.Transaction{}, err
		}

		w, err = e.wallets.Wallet(ctx, w.ID)
		if err != nil {
			return wallet.Transaction{}, err
		}
	}

	return wallet.Transaction{}, fault.Conflict("wallet", "posting retry budget exhausted")
}

func delta(in PostInput) int64 {
	if in.Type == wallet.TypeIssue {
		return -(in.PayableAmount + in.CouponAmount)
	}
	return in.CouponAmount
}

func status(txnType string, newBalance int64) string {
	if txnType != wallet.TypeIssue {
		return wallet.StatusNone
	}
	if newBalance >= 0 {
		return wallet.StatusPaid
	}
	return wallet.StatusDue
}
