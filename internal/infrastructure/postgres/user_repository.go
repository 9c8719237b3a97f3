package postgres

import (
	"context"
	"errors"

	domain "powerhack/backend/internal/domain/auth"

	"github.com/jackc/pgx/v5"
)

// UserRepository persists users in PostgreSQL.
type UserRepository struct {
	pool dbconn
}

// NewUserRepository constructs a repository.
func NewUserRepository(pool dbconn) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts a new user record. The unique index on email is the sole
// uniqueness guard; a violation surfaces as domain.ErrEmailExists so that
// concurrent registrations with the same email race safely.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
INSERT INTO users (id, name, email, password_hash, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

// GetByEmail fetches a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const query = `
SELECT id, name, email, password_hash, created_at
FROM users WHERE email = $1
`
	row := r.pool.QueryRow(ctx, query, email)

	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
