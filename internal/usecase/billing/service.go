package billing

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "powerhack/backend/internal/domain/billing"

	"github.com/google/uuid"
)

// Service encapsulates billing use cases. Bills are pass-through persistence
// records: no invariants beyond storing and retrieving what was sent.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a billing service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// Input contains the payload for creating or replacing a bill.
type Input struct {
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	PaidAmount float64 `json:"paidAmount"`
}

// List returns bills for the requested page. When both page and size are
// zero the full collection is returned, matching the unpaginated query.
func (s *Service) List(ctx context.Context, page, size int) ([]*domain.Bill, error) {
	if page < 0 {
		page = 0
	}
	if size > 0 {
		return s.repo.List(ctx, page*size, size)
	}
	return s.repo.List(ctx, 0, 0)
}

// Count returns the total number of bills, used by clients to build pagination.
func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Add stores a new bill with a generated id.
func (s *Service) Add(ctx context.Context, input Input) (*domain.Bill, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.New("name is required")
	}

	now := s.nowFunc().UTC()
	bill := &domain.Bill{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		PaidAmount: input.PaidAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Insert(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Update replaces the bill with the given id, inserting it when absent.
func (s *Service) Update(ctx context.Context, id string, input Input) (*domain.Bill, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	now := s.nowFunc().UTC()
	bill := &domain.Bill{
		ID:         id,
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		PaidAmount: input.PaidAmount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.repo.Upsert(ctx, bill); err != nil {
		return nil, err
	}
	return bill, nil
}

// Delete removes a bill by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
