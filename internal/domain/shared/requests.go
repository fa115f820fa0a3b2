package shared

import (
	"fmt"
	"strings"
	"time"

	"github.com/contabilidade-ledger/internal/domain/ledger"
)

// AccountingEvent is a typed business event handed to the posting engine.
// Transport adapters are responsible for date parsing; the engine only
// accepts typed values.
type AccountingEvent struct {
	Type        string
	Date        time.Time // zero value means "now" at commit time
	Amount      float64
	Description string
	Metadata    map[string]interface{}
}

// Validate checks required event fields before any domain work happens
func (e *AccountingEvent) Validate() error {
	if strings.TrimSpace(e.Type) == "" {
		return ErrInvalidEvent{Field: "tipo", Reason: "is required"}
	}
	if e.Amount <= 0 {
		return ErrInvalidEvent{Field: "valor", Reason: "must be a positive number"}
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrInvalidEvent{Field: "descricao", Reason: "is required"}
	}
	return nil
}

// LineRequest describes one candidate line of a manual entry
type LineRequest struct {
	AccountID string
	Side      ledger.Side
	Amount    float64
	Memo      string
}

// EntryRequest describes a manually supplied entry with explicit lines
type EntryRequest struct {
	Date           time.Time // zero value means "now" at commit time
	DocumentNumber string
	Description    string
	Lines          []LineRequest
	SourceEvent    string
	Metadata       map[string]interface{}
}

// Validate checks required request fields. Line amounts must be positive
// on this path too, mirroring the event path's acceptance rule.
func (r *EntryRequest) Validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return ErrInvalidRequest{Reason: "historico is required"}
	}
	if len(r.Lines) < 2 {
		return ErrInvalidRequest{Reason: "at least 2 line items are required (one debit and one credit)"}
	}
	for i, line := range r.Lines {
		if strings.TrimSpace(line.AccountID) == "" {
			return ErrInvalidRequest{Reason: fmt.Sprintf("item %d: contaId is required", i)}
		}
		if !line.Side.Valid() {
			return ErrInvalidRequest{Reason: fmt.Sprintf("item %d: tipo must be DEBITO or CREDITO", i)}
		}
		if line.Amount <= 0 {
			return ErrInvalidRequest{Reason: fmt.Sprintf("item %d: valor must be a positive number", i)}
		}
	}
	return nil
}

// ErrInvalidEvent indicates a missing or malformed event field,
// caught before any store lookup
type ErrInvalidEvent struct {
	Field  string
	Reason string
}

func (e ErrInvalidEvent) Error() string {
	return fmt.Sprintf("invalid event: field %q %s", e.Field, e.Reason)
}

// ErrInvalidRequest indicates a missing or malformed entry request field
type ErrInvalidRequest struct {
	Reason string
}

func (e ErrInvalidRequest) Error() string {
	return "invalid entry request: " + e.Reason
}
