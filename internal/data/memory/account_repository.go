// Package memory provides in-memory implementations of the domain
// repositories. This is the reference storage scope: process-wide keyed
// stores guarded by a per-store mutex, with insertion order preserved for
// listings. State is lost on restart.
package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/contabilidade-ledger/internal/domain/account"
)

// AccountRepository implements account.Repository over a mutex-guarded map
type AccountRepository struct {
	mu     sync.RWMutex
	byID   map[string]*account.Account
	byCode map[string]string // code -> id
	order  []string
	logger *slog.Logger
}

// NewAccountRepository creates an empty in-memory chart-of-accounts store
func NewAccountRepository(logger *slog.Logger) *AccountRepository {
	return &AccountRepository{
		byID:   make(map[string]*account.Account),
		byCode: make(map[string]string),
		logger: logger,
	}
}

// Create inserts a new account, enforcing code uniqueness
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byCode[acc.Code]; exists {
		return account.ErrDuplicateCode{Code: acc.Code}
	}

	stored := *acc
	r.byID[stored.ID] = &stored
	r.byCode[stored.Code] = stored.ID
	r.order = append(r.order, stored.ID)

	return nil
}

// GetByID returns the account or (nil, nil) when it does not exist
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	out := *acc
	return &out, nil
}

// GetByCode returns the account or (nil, nil) when it does not exist
func (r *AccountRepository) GetByCode(ctx context.Context, code string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byCode[code]
	if !ok {
		return nil, nil
	}

	out := *r.byID[id]
	return &out, nil
}

// List returns all accounts in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]*account.Account, 0, len(r.order))
	for _, id := range r.order {
		out := *r.byID[id]
		accounts = append(accounts, &out)
	}

	return accounts, nil
}
