package postgres

import (
	"context"

	domain "powerhack/backend/internal/domain/billing"

	"github.com/jackc/pgx/v5"
)

// BillRepository persists bills in PostgreSQL.
type BillRepository struct {
	pool dbconn
}

// NewBillRepository constructs a repository.
func NewBillRepository(pool dbconn) *BillRepository {
	return &BillRepository{pool: pool}
}

// Insert stores a new bill.
func (r *BillRepository) Insert(ctx context.Context, bill *domain.Bill) error {
	const query = `
INSERT INTO bills (id, name, email, phone, paid_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.Name,
		bill.Email,
		bill.Phone,
		bill.PaidAmount,
		bill.CreatedAt,
		bill.UpdatedAt,
	)
	return err
}

// Upsert updates the bill with the given id, inserting it when absent.
func (r *BillRepository) Upsert(ctx context.Context, bill *domain.Bill) error {
	const query = `
INSERT INTO bills (id, name, email, phone, paid_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    email = EXCLUDED.email,
    phone = EXCLUDED.phone,
    paid_amount = EXCLUDED.paid_amount,
    updated_at = EXCLUDED.updated_at
`
	_, err := r.pool.Exec(ctx, query,
		bill.ID,
		bill.Name,
		bill.Email,
		bill.Phone,
		bill.PaidAmount,
		bill.CreatedAt,
		bill.UpdatedAt,
	)
	return err
}

// Delete removes a bill by id.
func (r *BillRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM bills WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns bills ordered by creation time, newest first. A positive
// limit applies OFFSET/LIMIT pagination; limit <= 0 returns everything.
func (r *BillRepository) List(ctx context.Context, offset, limit int) ([]*domain.Bill, error) {
	query := `
SELECT id, name, email, phone, paid_amount, created_at, updated_at
FROM bills
ORDER BY created_at DESC
`
	var args []any
	if limit > 0 {
		query += "OFFSET $1 LIMIT $2"
		args = append(args, offset, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*domain.Bill
	for rows.Next() {
		bill, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, rows.Err()
}

// Count returns the total number of bills.
func (r *BillRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM bills`
	var count int64
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanBill(row pgx.Row) (*domain.Bill, error) {
	var b domain.Bill
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.PaidAmount,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
