package accesskey

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Repository persists access keys.
type Repository interface {
	Create(ctx context.Context, key AccessKey) error
	Key(ctx context.Context, id string) (AccessKey, error)
}

// PostgresRepository stores access keys in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed access key repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts an access key record.
func (r *PostgresRepository) Create(ctx context.Context, key AccessKey) error {
	_, err := r.db.Exec(ctx, `INSERT INTO access_keys (id, role, hash, expires_at, created_at)
        VALUES ($1, $2, $3, $4, $5)`, key.ID, key.Role, key.Hash, key.ExpiresAt.UTC(), key.CreatedAt.UTC())
	if err != nil {
		return fault.Store(err)
	}
	return nil
}

// Key fetches an access key by identifier.
func (r *PostgresRepository) Key(ctx context.Context, id string) (AccessKey, error) {
	row := r.db.QueryRow(ctx, `SELECT id, role, hash, expires_at, created_at FROM access_keys WHERE id = $1`, id)
	var (
		key       AccessKey
		expiresAt time.Time
		createdAt time.Time
	)
	if err := row.Scan(&key.ID, &key.Role, &key.Hash, &expiresAt, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return AccessKey{}, fault.NotFound("access key")
		}
		return AccessKey{}, fault.Store(err)
	}
	key.ExpiresAt = expiresAt.UTC()
	key.CreatedAt = createdAt.UTC()
	return key, nil
}

type memoryRepository struct {
	mu      sync.RWMutex
	storage map[string]AccessKey
}

// NewMemoryRepository constructs an in-memory access key repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[string]AccessKey)}
}

func (r *memoryRepository) Create(_ context.Context, key AccessKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.storage[key.ID] = key
	return nil
}

func (r *memoryRepository) Key(_ context.Context, id string) (AccessKey, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	key, ok := r.storage[id]
	if !ok {
		return AccessKey{}, fault.NotFound("access key")
	}
	return key, nil
}
