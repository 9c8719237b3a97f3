package billing

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a bill could not be located.
	ErrNotFound = errors.New("bill not found")
	// ErrInvalidID indicates a malformed bill identifier.
	ErrInvalidID = errors.New("invalid bill id")
)

// Bill captures a single billing record.
type Bill struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	PaidAmount float64   `json:"paidAmount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
