package billing

import "context"

// Repository defines persistence behaviours for bills.
type Repository interface {
	Insert(ctx context.Context, bill *Bill) error
	// Upsert updates the bill with the given id, inserting it when absent.
	Upsert(ctx context.Context, bill *Bill) error
	Delete(ctx context.Context, id string) error
	// List returns bills ordered by creation time, newest first. A positive
	// limit applies OFFSET/LIMIT pagination; limit <= 0 returns everything.
	List(ctx context.Context, offset, limit int) ([]*Bill, error)
	Count(ctx context.Context) (int64, error)
}
