package billing

import (
	"context"
	"testing"

	domain "powerhack/backend/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillRepo struct {
	bills      map[string]*domain.Bill
	lastOffset int
	lastLimit  int
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[string]*domain.Bill)}
}

func (f *fakeBillRepo) Insert(_ context.Context, bill *domain.Bill) error {
	stored := *bill
	f.bills[bill.ID] = &stored
	return nil
}

func (f *fakeBillRepo) Upsert(_ context.Context, bill *domain.Bill) error {
	stored := *bill
	f.bills[bill.ID] = &stored
	return nil
}

func (f *fakeBillRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.bills[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.bills, id)
	return nil
}

func (f *fakeBillRepo) List(_ context.Context, offset, limit int) ([]*domain.Bill, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	out := make([]*domain.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBillRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.bills)), nil
}

func TestAdd(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewService(repo)

	bill, err := svc.Add(context.Background(), Input{
		Name:       "  Rahim Uddin ",
		Email:      "rahim@example.com",
		Phone:      "01712345678",
		PaidAmount: 420.50,
	})
	require.NoError(t, err)

	_, err = uuid.Parse(bill.ID)
	assert.NoError(t, err, "id must be a generated uuid")
	assert.Equal(t, "Rahim Uddin", bill.Name)
	assert.False(t, bill.CreatedAt.IsZero())
	assert.Equal(t, bill.CreatedAt, bill.UpdatedAt)
	assert.Len(t, repo.bills, 1)
}

func TestAdd_RequiresName(t *testing.T) {
	svc := NewService(newFakeBillRepo())

	_, err := svc.Add(context.Background(), Input{Name: "   "})
	require.Error(t, err)
}

func TestList_PaginationMath(t *testing.T) {
	tests := []struct {
		name       string
		page, size int
		wantOffset int
		wantLimit  int
	}{
		{name: "third page of ten", page: 2, size: 10, wantOffset: 20, wantLimit: 10},
		{name: "first page", page: 0, size: 5, wantOffset: 0, wantLimit: 5},
		{name: "no pagination returns everything", page: 0, size: 0, wantOffset: 0, wantLimit: 0},
		{name: "negative page clamps to zero", page: -3, size: 10, wantOffset: 0, wantLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeBillRepo()
			svc := NewService(repo)

			_, err := svc.List(context.Background(), tt.page, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOffset, repo.lastOffset)
			assert.Equal(t, tt.wantLimit, repo.lastLimit)
		})
	}
}

func TestUpdate_UpsertsByID(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewService(repo)

	id := uuid.NewString()
	bill, err := svc.Update(context.Background(), id, Input{Name: "Karim", PaidAmount: 99})
	require.NoError(t, err)
	assert.Equal(t, id, bill.ID)
	assert.Len(t, repo.bills, 1, "update must insert when the bill is absent")

	bill, err = svc.Update(context.Background(), id, Input{Name: "Karim", PaidAmount: 150})
	require.NoError(t, err)
	assert.Equal(t, 150.0, bill.PaidAmount)
	assert.Len(t, repo.bills, 1)
}

func TestUpdate_RejectsMalformedID(t *testing.T) {
	svc := NewService(newFakeBillRepo())

	_, err := svc.Update(context.Background(), "not-a-uuid", Input{Name: "Karim"})
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestDelete(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewService(repo)

	bill, err := svc.Add(context.Background(), Input{Name: "Karim"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), bill.ID))
	assert.Empty(t, repo.bills)

	assert.ErrorIs(t, svc.Delete(context.Background(), bill.ID), domain.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), "not-a-uuid"), domain.ErrInvalidID)
}

func TestCount(t *testing.T) {
	repo := newFakeBillRepo()
	svc := NewService(repo)

	for range 3 {
		_, err := svc.Add(context.Background(), Input{Name: "Karim"})
		require.NoError(t, err)
	}

	count, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
