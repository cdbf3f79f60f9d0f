package member

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/clubwallet/clubwallet/internal/fault"
)

var mobilePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Service manages the member directory.
type Service struct {
	repo Repository
}

// NewService builds a member service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput captures the data required to register a member.
type RegisterInput struct {
	Name         string
	MobileNumber string
	Address      string
	BloodGroup   string
	Nationality  string
	Organization string
	ExpiresAt    time.Time
}

// Register validates and stores a new member. Member identifiers follow the
// club card scheme: BEC<yyyymmdd><name>@<sequence>.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Member, error) {
	if input.Name == "" {
		return Member{}, fault.Validation("name", "name is required")
	}
	if !mobilePattern.MatchString(input.MobileNumber) {
		return Member{}, fault.Validation("mobileNumber", "mobile number must be 10 digits")
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return Member{}, err
	}

	now := time.Now().UTC()
	m := Member{
		ID:           fmt.Sprintf("BEC%s%s@%d", now.Format("20060102"), input.Name, count+1),
		Name:         input.Name,
		MobileNumber: input.MobileNumber,
		Address:      input.Address,
		BloodGroup:   input.BloodGroup,
		Nationality:  input.Nationality,
		Organization: input.Organization,
		ExpiresAt:    input.ExpiresAt,
		CreatedAt:    now,
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Member{}, err
	}
	return m, nil
}

// Get resolves a member by identifier.
func (s *Service) Get(ctx context.Context, id string) (Member, error) {
	return s.repo.Member(ctx, id)
}

// List returns all registered members.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}
