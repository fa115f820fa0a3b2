package ledger

import (
	"fmt"
	"math"
	"time"
)

// BalanceTolerance is the absolute tolerance used when comparing debit and
// credit totals, absorbing floating point noise in amount arithmetic.
const BalanceTolerance = 0.01

// Side marks a line as a debit or a credit
type Side string

const (
	SideDebit  Side = "DEBITO"
	SideCredit Side = "CREDITO"
)

// Valid reports whether s is a known line side
func (s Side) Valid() bool {
	return s == SideDebit || s == SideCredit
}

// Status defines entry lifecycle states. Current flows only ever produce
// StatusConfirmed; StatusCancelled is reserved.
type Status string

const (
	StatusPending   Status = "PENDENTE"
	StatusConfirmed Status = "CONFIRMADO"
	StatusCancelled Status = "CANCELADO"
)

// Line is a single debit or credit row within an entry. Lines have no
// lifecycle of their own and are immutable once the entry is committed.
type Line struct {
	ID        string  `json:"id" bson:"id"`
	AccountID string  `json:"contaId" bson:"conta_id"` // references Account.ID, never an embedded copy
	Side      Side    `json:"tipo" bson:"tipo"`
	Amount    float64 `json:"valor" bson:"valor"`
	Memo      string  `json:"historico" bson:"historico"`
}

// Entry is one double-entry accounting record (lançamento contábil).
// Committed entries always satisfy Balanced on their lines.
type Entry struct {
	ID             string                 `json:"id" bson:"id"`
	Date           time.Time              `json:"data" bson:"data"`
	DocumentNumber string                 `json:"numeroDocumento,omitempty" bson:"numero_documento,omitempty"`
	Description    string                 `json:"historico" bson:"historico"`
	Lines          []Line                 `json:"itens" bson:"itens"`
	Status         Status                 `json:"status" bson:"status"`
	SourceEvent    string                 `json:"eventoOrigem,omitempty" bson:"evento_origem,omitempty"`
	Metadata       map[string]interface{} `json:"metadados,omitempty" bson:"metadados,omitempty"`
	CreatedAt      time.Time              `json:"criadoEm" bson:"criado_em"`
	UpdatedAt      time.Time              `json:"atualizadoEm" bson:"atualizado_em"`
}

// Totals sums line amounts per side
func Totals(lines []Line) (debits, credits float64) {
	for _, line := range lines {
		switch line.Side {
		case SideDebit:
			debits += line.Amount
		case SideCredit:
			credits += line.Amount
		}
	}
	return debits, credits
}

// Balanced reports whether debit and credit totals match within
// BalanceTolerance. This is the double-entry invariant.
func Balanced(lines []Line) bool {
	debits, credits := Totals(lines)
	return math.Abs(debits-credits) <= BalanceTolerance
}

// ErrUnbalancedEntry indicates a violation of the double-entry invariant
type ErrUnbalancedEntry struct {
	Debits  float64
	Credits float64
}

func (e ErrUnbalancedEntry) Error() string {
	return fmt.Sprintf("unbalanced entry: debits=%.2f credits=%.2f", e.Debits, e.Credits)
}
