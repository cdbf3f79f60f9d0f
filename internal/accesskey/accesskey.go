package accesskey

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubwallet/clubwallet/internal/fault"
)

// Roles an access key may carry.
const (
	RoleOperator = "operator"
	RoleAdmin    = "admin"
)

// AccessKey is an opaque, short-lived credential handed to club terminals.
// Only the bcrypt hash of the secret is stored.
type AccessKey struct {
	ID        string
	Role      string
	Hash      []byte
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the key is past its validity window.
func (k AccessKey) Expired(now time.Time) bool {
	return now.After(k.ExpiresAt)
}

// Service mints and verifies access keys.
type Service struct {
	repo Repository
	ttl  time.Duration
}

// NewService builds an access key service. ttl bounds key validity.
func NewService(repo Repository, ttl time.Duration) *Service {
	return &Service{repo: repo, ttl: ttl}
}

// Mint creates a key for the role and returns the one-time plaintext token
// in the form "<id>.<secret>". The secret is not recoverable afterwards.
func (s *Service) Mint(ctx context.Context, role string) (string, AccessKey, error) {
	if role != RoleOperator && role != RoleAdmin {
		return "", AccessKey{}, fault.Validation("role", "role must be operator or admin")
	}

	secret := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", AccessKey{}, err
	}

	now := time.Now().UTC()
	key := AccessKey{
		ID:        uuid.NewString(),
		Role:      role,
		Hash:      hash,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, key); err != nil {
		return "", AccessKey{}, err
	}
	return key.ID + "." + secret, key, nil
}

// Verify resolves a plaintext token to its key, checking the secret and the
// validity window.
func (s *Service) Verify(ctx context.Context, token string) (AccessKey, error) {
	id, secret, ok := strings.Cut(token, ".")
	if !ok || id == "" || secret == "" {
		return AccessKey{}, fault.Validation("accessKey", "malformed access key")
	}

	key, err := s.repo.Key(ctx, id)
	if err != nil {
		return AccessKey{}, err
	}
	if key.Expired(time.Now().UTC()) {
		return AccessKey{}, fault.NotFound("access key")
	}
	if err := bcrypt.CompareHashAndPassword(key.Hash, []byte(secret)); err != nil {
		return AccessKey{}, fault.NotFound("access key")
	}
	return key, nil
}
