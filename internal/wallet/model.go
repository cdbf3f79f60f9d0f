package wallet

import "time"

// Transaction types. An issue is a debit representing a purchase partially
// subsidized by a coupon; a receive is a credit such as a top-up.
const (
	TypeIssue   = "issue"
	TypeReceive = "receive"
)

// Settlement statuses. A due issue drove the balance negative (overdraft is
// recorded, not rejected). Receives always settle as none.
const (
	StatusPaid = "paid"
	StatusDue  = "due"
	StatusNone = "none"
)

// Wallet is the per-member running balance. Amounts are in minor currency
// units. Version increments on every committed transaction and guards
// balance updates against lost writes.
type Wallet struct {
	ID        string
	MemberID  string
	Balance   int64
	Version   int64
	CreatedAt time.Time
}

// Transaction is an immutable posting record. WalletAmount is the wallet
// balance after the transaction was applied.
type Transaction struct {
	ID            string
	WalletID      string
	MemberID      string
	CouponID      string
	PayableAmount int64
	CouponAmount  int64
	WalletAmount  int64
	Type          string
	Status        string
	CreatedAt     time.Time
}

// TransactionQuery filters stored transactions. Zero Start/End leave the
// range unbounded on that side; bounds are inclusive. An offset past the
// end of the result set yields an empty slice.
type TransactionQuery struct {
	WalletID string
	Type     string
	Start    time.Time
	End      time.Time
	SortAsc  bool
	Offset   int
	Limit    int
}

// Summary aggregates posting volume across all wallets.
type Summary struct {
	Total int64
	Today int64
}
