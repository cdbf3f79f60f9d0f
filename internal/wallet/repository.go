package wallet

import (
	"context"
	"errors"
)

// ErrStaleWallet indicates the wallet version passed to AppendTransaction no
// longer matches the stored one: another posting committed in between. The
// caller should re-read the wallet and retry.
var ErrStaleWallet = errors.New("wallet version is stale")

// Repository is the sole authority over wallet existence and balance
// mutation. AppendTransaction is the only way a balance changes.
type Repository interface {
	// CreateWallet stores a new wallet. Creation is atomic per member:
	// exactly one of two concurrent calls for the same member succeeds, the
	// other observes a conflict.
	CreateWallet(ctx context.Context, w Wallet) error

	// Wallet fetches a wallet by identifier.
	Wallet(ctx context.Context, id string) (Wallet, error)

	// WalletByMember fetches the wallet owned by the member.
	WalletByMember(ctx context.Context, memberID string) (Wallet, error)

	// AppendTransaction atomically stores txn and sets the wallet balance to
	// txn.WalletAmount, provided the stored wallet version still equals
	// expectedVersion. Both writes commit together or not at all. Returns
	// ErrStaleWallet on a version mismatch.
	AppendTransaction(ctx context.Context, txn Transaction, expectedVersion int64) error

	// Transactions returns postings matching the query, sorted by creation
	// time. An empty result is not an error.
	Transactions(ctx context.Context, q TransactionQuery) ([]Transaction, error)

	// Summary reports total posting volume and today's volume.
	Summary(ctx context.Context) (Summary, error)
}
