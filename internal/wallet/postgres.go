package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubwallet/clubwallet/internal/fault"
)

const uniqueViolation = "23505"

// PostgresRepository stores wallets and transactions in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// CreateWallet inserts a wallet record. The unique index on member_id makes
// the existence check and the insert a single atomic unit.
func (r *PostgresRepository) CreateWallet(ctx context.Context, w Wallet) error {
	_, err := r.db.Exec(ctx, `INSERT INTO wallets (id, member_id, balance, version, created_at)
        VALUES ($1, $2, $3, $4, $5)`, w.ID, w.MemberID, w.Balance, w.Version, w.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fault.Conflict("wallet", "member already owns a wallet")
		}
		return fault.Store(err)
	}
	return nil
}

// Wallet fetches a wallet by identifier.
func (r *PostgresRepository) Wallet(ctx context.Context, id string) (Wallet, error) {
	return scanWallet(r.db.QueryRow(ctx, walletSelect+` WHERE id = $1`, id))
}

// WalletByMember fetches the wallet owned by the member.
func (r *PostgresRepository) WalletByMember(ctx context.Context, memberID string) (Wallet, error) {
	return scanWallet(r.db.QueryRow(ctx, walletSelect+` WHERE member_id = $1`, memberID))
}

// AppendTransaction commits the transaction record and the new balance in a
// single database transaction so readers never observe one without the
// other. The version predicate rejects stale balances.
func (r *PostgresRepository) AppendTransaction(ctx context.Context, txn Transaction, expectedVersion int64) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fault.Store(err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	cmd, err := tx.Exec(ctx, `UPDATE wallets SET balance = $1, version = version + 1
        WHERE id = $2 AND version = $3`, txn.WalletAmount, txn.WalletID, expectedVersion)
	if err != nil {
		return fault.Store(err)
	}
	if cmd.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM wallets WHERE id = $1)`, txn.WalletID).Scan(&exists); err != nil {
			return fault.Store(err)
		}
		if !exists {
			return fault.NotFound("wallet")
		}
		return ErrStaleWallet
	}

	if _, err := tx.Exec(ctx, `INSERT INTO transactions (id, wallet_id, member_id, coupon_id, payable_amount, coupon_amount, wallet_amount, type, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		txn.ID, txn.WalletID, txn.MemberID, txn.CouponID, txn.PayableAmount, txn.CouponAmount, txn.WalletAmount, txn.Type, txn.Status, txn.CreatedAt.UTC()); err != nil {
		return fault.Store(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fault.Store(err)
	}
	return nil
}

// Transactions returns postings matching the query.
func (r *PostgresRepository) Transactions(ctx context.Context, q TransactionQuery) ([]Transaction, error) {
	query := `SELECT id, wallet_id, member_id, coupon_id, payable_amount, coupon_amount, wallet_amount, type, status, created_at
        FROM transactions WHERE wallet_id = $1`
	args := []any{q.WalletID}

	if q.Type != "" {
		args = append(args, q.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if !q.Start.IsZero() {
		args = append(args, q.Start.UTC())
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if !q.End.IsZero() {
		args = append(args, q.End.UTC())
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	if q.SortAsc {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	if q.Limit > 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fault.Store(err)
	}
	defer rows.Close()

	transactions := make([]Transaction, 0)
	for rows.Next() {
		var (
			txn       Transaction
			createdAt time.Time
		)
		if err := rows.Scan(&txn.ID, &txn.WalletID, &txn.MemberID, &txn.CouponID, &txn.PayableAmount, &txn.CouponAmount, &txn.WalletAmount, &txn.Type, &txn.Status, &createdAt); err != nil {
			return nil, fault.Store(err)
		}
		txn.CreatedAt = createdAt.UTC()
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Store(err)
	}
	return transactions, nil
}

// Summary reports overall posting volume.
func (r *PostgresRepository) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	err := r.db.QueryRow(ctx, `SELECT COUNT(*),
        COUNT(*) FILTER (WHERE created_at >= date_trunc('day', now() AT TIME ZONE 'utc'))
        FROM transactions`).Scan(&s.Total, &s.Today)
	if err != nil {
		return Summary{}, fault.Store(err)
	}
	return s, nil
}

const walletSelect = `SELECT id, member_id, balance, version, created_at FROM wallets`

func scanWallet(row pgx.Row) (Wallet, error) {
	var (
		w         Wallet
		createdAt time.Time
	)
	if err := row.Scan(&w.ID, &w.MemberID, &w.Balance, &w.Version, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Wallet{}, fault.NotFound("wallet")
		}
		return Wallet{}, fault.Store(err)
	}
	w.CreatedAt = createdAt.UTC()
	return w, nil
}
