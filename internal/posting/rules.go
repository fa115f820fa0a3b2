package posting

import (
	"strings"

	"github.com/contabilidade-ledger/internal/domain/account"
)

// Rule maps an event type to the pair of accounts it posts against.
// Both lines carry the full event amount.
type Rule struct {
	Label           string // memo prefix, e.g. "Venda: <description>"
	DebitAccountID  string
	CreditAccountID string
}

// RuleTable is the swappable event-type → posting rule mapping owned by the
// engine. Keys are upper-cased event type tags.
type RuleTable map[string]Rule

// Resolve looks up the rule for an event type, case-insensitively
func (t RuleTable) Resolve(eventType string) (Rule, bool) {
	rule, ok := t[strings.ToUpper(strings.TrimSpace(eventType))]
	return rule, ok
}

// DefaultRules returns the reference rule set over the default chart:
//
//	VENDA        debit Caixa (1)                  credit Receita de Vendas (5)
//	PAGAMENTO    debit Fornecedores (4)           credit Caixa (1)
//	RECEBIMENTO  debit Caixa (1)                  credit Contas a Receber (3)
//	COMPRA       debit Estoque (7)                credit Fornecedores (4)
//	DESPESA      debit Despesas Operacionais (6)  credit Caixa (1)
func DefaultRules() RuleTable {
	return RuleTable{
		"VENDA":       {Label: "Venda", DebitAccountID: account.CashAccountID, CreditAccountID: account.SalesRevenueAccountID},
		"PAGAMENTO":   {Label: "Pagamento", DebitAccountID: account.PayablesAccountID, CreditAccountID: account.CashAccountID},
		"RECEBIMENTO": {Label: "Recebimento", DebitAccountID: account.CashAccountID, CreditAccountID: account.ReceivablesAccountID},
		"COMPRA":      {Label: "Compra", DebitAccountID: account.InventoryAccountID, CreditAccountID: account.PayablesAccountID},
		"DESPESA":     {Label: "Despesa", DebitAccountID: account.OperatingExpenseAccountID, CreditAccountID: account.CashAccountID},
	}
}

// ErrUnsupportedEventType indicates an event tag with no posting rule
type ErrUnsupportedEventType struct {
	Type string
}

func (e ErrUnsupportedEventType) Error() string {
	return "unsupported event type: " + e.Type
}
