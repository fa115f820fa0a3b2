// Package posting implements the double-entry posting engine. It translates
// business events into balanced entries via a rule table, validates manual
// entries, and enforces the balance invariant and chart-of-accounts
// referential integrity before anything reaches the ledger store.
package posting

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/domain/ledger"
	"github.com/contabilidade-ledger/internal/domain/shared"
)

// Engine is the posting engine. It owns no state beyond its collaborators
// and is safe for concurrent use as long as the repositories are.
type Engine struct {
	accounts account.Repository
	entries  ledger.Repository
	rules    RuleTable
	logger   *slog.Logger
}

// NewEngine creates a posting engine. A nil rules table falls back to
// DefaultRules.
func NewEngine(logger *slog.Logger, accounts account.Repository, entries ledger.Repository, rules RuleTable) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	return &Engine{
		accounts: accounts,
		entries:  entries,
		rules:    rules,
		logger:   logger,
	}
}

// draft carries the candidate entry between the two public entry points and
// the balanced commit.
type draft struct {
	date           time.Time
	documentNumber string
	description    string
	lines          []ledger.Line
	sourceEvent    string
	metadata       map[string]interface{}
}

// ProcessEvent maps a business event to a balanced pair of lines using the
// rule table and commits the resulting entry. The event is validated before
// any store lookup happens.
func (e *Engine) ProcessEvent(ctx context.Context, event *shared.AccountingEvent) (*ledger.Entry, error) {
	if err := event.Validate(); err != nil {
		return nil, err
	}

	rule, ok := e.rules.Resolve(event.Type)
	if !ok {
		return nil, ErrUnsupportedEventType{Type: event.Type}
	}

	memo := fmt.Sprintf("%s: %s", rule.Label, event.Description)
	lines := []ledger.Line{
		{AccountID: rule.DebitAccountID, Side: ledger.SideDebit, Amount: event.Amount, Memo: memo},
		{AccountID: rule.CreditAccountID, Side: ledger.SideCredit, Amount: event.Amount, Memo: memo},
	}

	entry, err := e.commit(ctx, draft{
		date:        event.Date,
		description: event.Description,
		lines:       lines,
		sourceEvent: event.Type,
		metadata:    event.Metadata,
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Event posted",
		"entry_id", entry.ID,
		"event_type", event.Type,
		"amount", event.Amount,
	)
	return entry, nil
}

// CreateEntry commits a manually supplied entry after validating its shape.
func (e *Engine) CreateEntry(ctx context.Context, req *shared.EntryRequest) (*ledger.Entry, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lines := make([]ledger.Line, 0, len(req.Lines))
	for _, lr := range req.Lines {
		lines = append(lines, ledger.Line{
			AccountID: lr.AccountID,
			Side:      lr.Side,
			Amount:    lr.Amount,
			Memo:      lr.Memo,
		})
	}

	entry, err := e.commit(ctx, draft{
		date:           req.Date,
		documentNumber: req.DocumentNumber,
		description:    req.Description,
		lines:          lines,
		sourceEvent:    req.SourceEvent,
		metadata:       req.Metadata,
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("Manual entry posted", "entry_id", entry.ID, "lines", len(entry.Lines))
	return entry, nil
}

// commit is the balanced-commit primitive shared by both entry points.
// It resolves every account, enforces the balance invariant, assigns
// identifiers and timestamps, and appends the confirmed entry. A failure at
// any step leaves both stores untouched.
func (e *Engine) commit(ctx context.Context, d draft) (*ledger.Entry, error) {
	for _, line := range d.lines {
		acc, err := e.accounts.GetByID(ctx, line.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve account %s: %w", line.AccountID, err)
		}
		if acc == nil {
			return nil, account.ErrAccountNotFound{AccountID: line.AccountID}
		}
		if !acc.Active {
			return nil, account.ErrInactiveAccount{Name: acc.Name}
		}
	}

	debits, credits := ledger.Totals(d.lines)
	if math.Abs(debits-credits) > ledger.BalanceTolerance {
		return nil, ledger.ErrUnbalancedEntry{Debits: debits, Credits: credits}
	}

	now := time.Now()
	date := d.date
	if date.IsZero() {
		date = now
	}

	lines := make([]ledger.Line, len(d.lines))
	copy(lines, d.lines)
	for i := range lines {
		if lines[i].ID == "" {
			lines[i].ID = uuid.New().String()
		}
	}

	entry := &ledger.Entry{
		ID:             uuid.New().String(),
		Date:           date,
		DocumentNumber: d.documentNumber,
		Description:    d.description,
		Lines:          lines,
		Status:         ledger.StatusConfirmed,
		SourceEvent:    d.sourceEvent,
		Metadata:       d.metadata,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := e.entries.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to append entry: %w", err)
	}

	return entry, nil
}
