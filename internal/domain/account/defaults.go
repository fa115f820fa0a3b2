package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Identifiers of the reference chart. The default posting rules hardcode
// these, so the chart must be seeded before the engine accepts events.
const (
	CashAccountID             = "1"
	BankAccountID             = "2"
	ReceivablesAccountID      = "3"
	PayablesAccountID         = "4"
	SalesRevenueAccountID     = "5"
	OperatingExpenseAccountID = "6"
	InventoryAccountID        = "7"
)

// DefaultChart returns the seven-account reference chart, all active.
func DefaultChart() []*Account {
	now := time.Now()

	chart := []*Account{
		{ID: CashAccountID, Code: "1.1.1.01", Name: "Caixa", Type: TypeAsset, Nature: NatureDebit, Description: "Conta de caixa"},
		{ID: BankAccountID, Code: "1.1.2.01", Name: "Bancos", Type: TypeAsset, Nature: NatureDebit, Description: "Conta bancária"},
		{ID: ReceivablesAccountID, Code: "1.1.3.01", Name: "Contas a Receber", Type: TypeAsset, Nature: NatureDebit, Description: "Valores a receber"},
		{ID: PayablesAccountID, Code: "2.1.1.01", Name: "Fornecedores", Type: TypeLiability, Nature: NatureCredit, Description: "Contas a pagar a fornecedores"},
		{ID: SalesRevenueAccountID, Code: "3.1.1.01", Name: "Receita de Vendas", Type: TypeRevenue, Nature: NatureCredit, Description: "Receita proveniente de vendas"},
		{ID: OperatingExpenseAccountID, Code: "4.1.1.01", Name: "Despesas Operacionais", Type: TypeExpense, Nature: NatureDebit, Description: "Despesas com operações"},
		{ID: InventoryAccountID, Code: "1.2.1.01", Name: "Estoque", Type: TypeAsset, Nature: NatureDebit, Description: "Estoque de mercadorias"},
	}

	for _, acc := range chart {
		acc.Active = true
		acc.CreatedAt = now
		acc.UpdatedAt = now
	}

	return chart
}

// SeedDefaults registers the reference chart in the repository, skipping
// accounts whose code is already present so that restarts against a
// durable store do not duplicate the chart.
func SeedDefaults(ctx context.Context, logger *slog.Logger, repo Repository) error {
	for _, acc := range DefaultChart() {
		existing, err := repo.GetByCode(ctx, acc.Code)
		if err != nil {
			return fmt.Errorf("failed to check for existing account %s: %w", acc.Code, err)
		}
		if existing != nil {
			continue
		}

		if err := repo.Create(ctx, acc); err != nil {
			return fmt.Errorf("failed to seed account %s: %w", acc.Code, err)
		}
		logger.Info("Seeded chart account", "id", acc.ID, "code", acc.Code, "name", acc.Name)
	}

	return nil
}
