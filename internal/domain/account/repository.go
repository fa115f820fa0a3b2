package account

import (
	"context"
)

// Repository defines chart-of-accounts persistence operations.
// Lookups return (nil, nil) when no account matches; absence is not an error.
type Repository interface {
	// Create inserts a new account. Returns ErrDuplicateCode when an
	// account with the same code already exists.
	Create(ctx context.Context, acc *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByCode(ctx context.Context, code string) (*Account, error)

	// List returns all accounts in insertion order.
	List(ctx context.Context) ([]*Account, error)
}

// ErrDuplicateCode indicates a code uniqueness violation
type ErrDuplicateCode struct {
	Code string
}

func (e ErrDuplicateCode) Error() string {
	return "account with code already exists: " + e.Code
}

// ErrAccountNotFound indicates a missing account reference
type ErrAccountNotFound struct {
	AccountID string
}

func (e ErrAccountNotFound) Error() string {
	return "account not found: " + e.AccountID
}
