package service

import (
	"context"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/domain/ledger"
	"github.com/contabilidade-ledger/internal/domain/shared"
)

// AccountService defines the interface for chart-of-accounts operations
type AccountService interface {
	// CreateAccount registers a new account in the chart.
	// Returns ErrDuplicateCode if an account with the same code exists.
	CreateAccount(ctx context.Context, code, name string, accType account.Type, nature account.Nature, description, parentID string) (*account.Account, error)

	// GetAccountByID retrieves an account by its ID; (nil, nil) on a miss
	GetAccountByID(ctx context.Context, id string) (*account.Account, error)

	// ListAccounts returns all accounts in insertion order
	ListAccounts(ctx context.Context) ([]*account.Account, error)
}

// EntryService defines the interface for ledger entry operations
type EntryService interface {
	// ProcessEvent posts a business event through the posting engine
	ProcessEvent(ctx context.Context, event *shared.AccountingEvent) (*ledger.Entry, error)

	// CreateEntry posts a manually supplied entry through the posting engine
	CreateEntry(ctx context.Context, req *shared.EntryRequest) (*ledger.Entry, error)

	// GetEntryByID retrieves an entry by its ID; (nil, nil) on a miss
	GetEntryByID(ctx context.Context, id string) (*ledger.Entry, error)

	// ListEntries returns all entries in insertion order
	ListEntries(ctx context.Context) ([]*ledger.Entry, error)
}
