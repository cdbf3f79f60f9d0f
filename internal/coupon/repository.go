package coupon

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Repository persists coupons.
type Repository interface {
	Create(ctx context.Context, c Coupon) error
	Coupon(ctx context.Context, id string) (Coupon, error)
}

// PostgresRepository stores coupons in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed coupon repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a coupon record.
func (r *PostgresRepository) Create(ctx context.Context, c Coupon) error {
	_, err := r.db.Exec(ctx, `INSERT INTO coupons (id, member_id, amount, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)`, c.ID, c.MemberID, c.Amount, c.ExpiresAt.UTC(), c.CreatedAt.UTC())
	if err != nil {
		return fault.Store(err)
	}
	return nil
}

// Coupon fetches a coupon by identifier.
func (r *PostgresRepository) Coupon(ctx context.Context, id string) (Coupon, error) {
	row := r.db.QueryRow(ctx, `SELECT id, member_id, amount, expires_at, created_at FROM coupons WHERE id = $1`, id)
	var (
		c         Coupon
		expiresAt time.Time
		createdAt time.Time
	)
	if err := row.Scan(&c.ID, &c.MemberID, &c.Amount, &expiresAt, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Coupon{}, fault.NotFound("coupon")
		}
		return Coupon{}, fault.Store(err)
	}
	c.ExpiresAt = expiresAt.UTC()
	c.CreatedAt = createdAt.UTC()
	return c, nil
}
