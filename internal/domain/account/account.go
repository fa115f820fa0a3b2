package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyCode     = errors.New("account code cannot be empty")
	ErrEmptyName     = errors.New("account name cannot be empty")
	ErrInvalidType   = errors.New("invalid account type")
	ErrInvalidNature = errors.New("invalid balance nature")
)

// Type classifies an account following the Brazilian chart-of-accounts structure
type Type string

const (
	TypeAsset     Type = "ATIVO"
	TypeLiability Type = "PASSIVO"
	TypeEquity    Type = "PATRIMONIO_LIQUIDO"
	TypeRevenue   Type = "RECEITA"
	TypeExpense   Type = "DESPESA"
)

// Valid reports whether t is one of the five account classifications
func (t Type) Valid() bool {
	switch t {
	case TypeAsset, TypeLiability, TypeEquity, TypeRevenue, TypeExpense:
		return true
	}
	return false
}

// Nature is the side on which an account's balance conventionally increases
type Nature string

const (
	NatureDebit  Nature = "DEVEDORA"
	NatureCredit Nature = "CREDORA"
)

// Valid reports whether n is a known balance nature
func (n Nature) Valid() bool {
	return n == NatureDebit || n == NatureCredit
}

// Account is one entry of the chart of accounts (plano de contas).
// Accounts are never deleted; Active=false soft-disables posting against them.
type Account struct {
	ID          string    `json:"id"`
	Code        string    `json:"codigo"` // hierarchical, e.g. "1.1.1.01", unique across the chart
	Name        string    `json:"nome"`
	Type        Type      `json:"tipo"`
	Nature      Nature    `json:"natureza"`
	Description string    `json:"descricao,omitempty"`
	ParentID    string    `json:"contaPai,omitempty"` // stored as-is, never resolved
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"criadoEm"`
	UpdatedAt   time.Time `json:"atualizadoEm"`
}

// New creates an active account with a fresh identifier
func New(code, name string, accType Type, nature Nature, description, parentID string) (*Account, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if !accType.Valid() {
		return nil, ErrInvalidType
	}
	if !nature.Valid() {
		return nil, ErrInvalidNature
	}

	now := time.Now()
	return &Account{
		ID:          uuid.New().String(),
		Code:        code,
		Name:        name,
		Type:        accType,
		Nature:      nature,
		Description: description,
		ParentID:    parentID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ErrInactiveAccount indicates a posting attempt against a soft-disabled account
type ErrInactiveAccount struct {
	Name string
}

func (e ErrInactiveAccount) Error() string {
	return "account is inactive: " + e.Name
}
