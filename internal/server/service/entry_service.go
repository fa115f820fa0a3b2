package service

import (
	"context"

	"github.com/contabilidade-ledger/internal/domain/ledger"
	"github.com/contabilidade-ledger/internal/domain/shared"
	"github.com/contabilidade-ledger/internal/posting"
)

// EntryServiceImpl implements the EntryService interface. Writes go through
// the posting engine; reads go straight to the ledger store.
type EntryServiceImpl struct {
	engine     *posting.Engine
	ledgerRepo ledger.Repository
}

// NewEntryService creates a new ledger entry service
func NewEntryService(engine *posting.Engine, ledgerRepo ledger.Repository) EntryService {
	return &EntryServiceImpl{
		engine:     engine,
		ledgerRepo: ledgerRepo,
	}
}

// ProcessEvent posts a business event through the posting engine
func (s *EntryServiceImpl) ProcessEvent(ctx context.Context, event *shared.AccountingEvent) (*ledger.Entry, error) {
	return s.engine.ProcessEvent(ctx, event)
}

// CreateEntry posts a manually supplied entry through the posting engine
func (s *EntryServiceImpl) CreateEntry(ctx context.Context, req *shared.EntryRequest) (*ledger.Entry, error) {
	return s.engine.CreateEntry(ctx, req)
}

// GetEntryByID retrieves an entry by its ID; (nil, nil) on a miss
func (s *EntryServiceImpl) GetEntryByID(ctx context.Context, id string) (*ledger.Entry, error) {
	return s.ledgerRepo.GetByID(ctx, id)
}

// ListEntries returns all entries in insertion order
func (s *EntryServiceImpl) ListEntries(ctx context.Context) ([]*ledger.Entry, error) {
	return s.ledgerRepo.List(ctx)
}
