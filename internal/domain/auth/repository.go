package auth

import "context"

// UserRepository defines persistence operations for auth users. Users are
// created once at registration and only read afterwards; no update or delete
// path exists. Email uniqueness is enforced by the store, which reports a
// violation as ErrEmailExists.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
}
