package member

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Repository persists members.
type Repository interface {
	Create(ctx context.Context, m Member) error
	Member(ctx context.Context, id string) (Member, error)
	ByMobile(ctx context.Context, mobile string) (Member, error)
	SetWallet(ctx context.Context, memberID, walletID string) error
	List(ctx context.Context) ([]Member, error)
	Count(ctx context.Context) (int64, error)
}

const uniqueViolation = "23505"

// PostgresRepository stores members in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed member repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a member record. A duplicate mobile number is a conflict.
func (r *PostgresRepository) Create(ctx context.Context, m Member) error {
	_, err := r.db.Exec(ctx, `INSERT INTO members (id, name, mobile_number, address, blood_group, nationality, organization, wallet_id, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10)`,
		m.ID, m.Name, m.MobileNumber, m.Address, m.BloodGroup, m.Nationality, m.Organization, m.WalletID, m.ExpiresAt.UTC(), m.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fault.Conflict("member", "member already exists")
		}
		return fault.Store(err)
	}
	return nil
}

// Member fetches a member by identifier.
func (r *PostgresRepository) Member(ctx context.Context, id string) (Member, error) {
	return r.scanOne(r.db.QueryRow(ctx, memberSelect+` WHERE id = $1`, id))
}

// ByMobile fetches a member by mobile number.
func (r *PostgresRepository) ByMobile(ctx context.Context, mobile string) (Member, error) {
	return r.scanOne(r.db.QueryRow(ctx, memberSelect+` WHERE mobile_number = $1`, mobile))
}

// SetWallet records the wallet owned by the member.
func (r *PostgresRepository) SetWallet(ctx context.Context, memberID, walletID string) error {
	cmd, err := r.db.Exec(ctx, `UPDATE members SET wallet_id = $1 WHERE id = $2`, walletID, memberID)
	if err != nil {
		return fault.Store(err)
	}
	if cmd.RowsAffected() == 0 {
		return fault.NotFound("member")
	}
	return nil
}

// List returns all members ordered by creation time.
func (r *PostgresRepository) List(ctx context.Context) ([]Member, error) {
	rows, err := r.db.Query(ctx, memberSelect+` ORDER BY created_at DESC`)
	if err != nil {
		return nil, fault.Store(err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fault.Store(err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fault.Store(err)
	}
	return members, nil
}

// Count returns the number of registered members.
func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM members`).Scan(&n); err != nil {
		return 0, fault.Store(err)
	}
	return n, nil
}

const memberSelect = `SELECT id, name, mobile_number, address, blood_group, nationality, organization, COALESCE(wallet_id::text, ''), expires_at, created_at FROM members`

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) scanOne(row pgx.Row) (Member, error) {
	m, err := scanMember(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Member{}, fault.NotFound("member")
		}
		return Member{}, fault.Store(err)
	}
	return m, nil
}

func scanMember(row rowScanner) (Member, error) {
	var (
		m         Member
		expiresAt time.Time
		createdAt time.Time
	)
	if err := row.Scan(&m.ID, &m.Name, &m.MobileNumber, &m.Address, &m.BloodGroup, &m.Nationality, &m.Organization, &m.WalletID, &expiresAt, &createdAt); err != nil {
		return Member{}, err
	}
	m.ExpiresAt = expiresAt.UTC()
	m.CreatedAt = createdAt.UTC()
	return m, nil
}
