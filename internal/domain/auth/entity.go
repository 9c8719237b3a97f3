package auth

import (
	"errors"
	"time"
)

var (
	// ErrInvalidUsername indicates a missing or empty name on registration.
	ErrInvalidUsername = errors.New("invalid username")
	// ErrInvalidPassword indicates a missing or empty password on registration.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrPasswordTooShort indicates the password is below the minimum length.
	ErrPasswordTooShort = errors.New("password too short")
	// ErrEmailExists signals a duplicate email registration.
	ErrEmailExists = errors.New("email already in use")
	// ErrInvalidCredentials indicates a login failure. It covers both an
	// unknown email and a wrong password so callers cannot tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenInvalid means a supplied token cannot be validated.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired means a correctly signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrUserNotFound indicates missing user.
	ErrUserNotFound = errors.New("user not found")
)

// User models the authentication entity persisted in storage.
// PasswordHash always holds a bcrypt hash, never the original secret.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Credentials captures raw credential input for login.
type Credentials struct {
	Email    string
	Password string
}
