package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/contabilidade-ledger/internal/domain/ledger"
)

// LedgerRepository implements ledger.Repository over a mutex-guarded map.
// Entries are append-only; nothing here mutates or removes them.
type LedgerRepository struct {
	mu     sync.RWMutex
	byID   map[string]*ledger.Entry
	order  []string
	logger *slog.Logger
}

// NewLedgerRepository creates an empty in-memory ledger store
func NewLedgerRepository(logger *slog.Logger) *LedgerRepository {
	return &LedgerRepository{
		byID:   make(map[string]*ledger.Entry),
		logger: logger,
	}
}

// Append inserts an already-validated entry
func (r *LedgerRepository) Append(ctx context.Context, entry *ledger.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyEntry(entry)
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return nil
}

// GetByID returns the entry or (nil, nil) when it does not exist
func (r *LedgerRepository) GetByID(ctx context.Context, id string) (*ledger.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byID[id]
	if !ok {
		return nil, nil
	}

	return copyEntry(entry), nil
}

// List returns all entries in insertion order
func (r *LedgerRepository) List(ctx context.Context) ([]*ledger.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*ledger.Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, copyEntry(r.byID[id]))
	}

	return entries, nil
}

// copyEntry clones an entry so callers never alias store-owned state
func copyEntry(entry *ledger.Entry) *ledger.Entry {
	out := *entry

	out.Lines = make([]ledger.Line, len(entry.Lines))
	copy(out.Lines, entry.Lines)

	if entry.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(entry.Metadata))
		for k, v := range entry.Metadata {
			out.Metadata[k] = v
		}
	}

	return &out
}
