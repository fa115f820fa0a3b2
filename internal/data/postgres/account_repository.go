// Package postgres provides the PostgreSQL implementation of the
// chart-of-accounts repository. Code uniqueness is enforced by a database
// constraint and surfaced as the domain's ErrDuplicateCode.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/contabilidade-ledger/internal/domain/account"
	"github.com/contabilidade-ledger/internal/platform/persistence"
)

// uniqueViolation is the PostgreSQL error code for unique constraint failures
const uniqueViolation = "23505"

// AccountRepository implements account.Repository for PostgreSQL
type AccountRepository struct {
	querier persistence.Querier // *pgxpool.Pool or pgx.Tx
	logger  *slog.Logger
}

// NewAccountRepository creates a new PostgreSQL chart-of-accounts repository
func NewAccountRepository(logger *slog.Logger, db *persistence.PostgresDB) account.Repository {
	return &AccountRepository{
		querier: db.Pool(),
		logger:  logger,
	}
}

// Create stores a new account. Returns ErrDuplicateCode when the unique
// index on code rejects the insert.
func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO chart_of_accounts (id, code, name, type, nature, description, parent_id, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.querier.Exec(ctx, query,
		acc.ID,
		acc.Code,
		acc.Name,
		string(acc.Type),
		string(acc.Nature),
		acc.Description,
		acc.ParentID,
		acc.Active,
		acc.CreatedAt,
		acc.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.ErrDuplicateCode{Code: acc.Code}
		}
		r.logger.Error("Failed to create account", "code", acc.Code, "error", err)
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

// GetByID retrieves an account by its ID, returning (nil, nil) on a miss
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*account.Account, error) {
	query := `
		SELECT id, code, name, type, nature, description, parent_id, active, created_at, updated_at
		FROM chart_of_accounts
		WHERE id = $1
	`

	return r.scanOne(ctx, query, id)
}

// GetByCode retrieves an account by its code, returning (nil, nil) on a miss
func (r *AccountRepository) GetByCode(ctx context.Context, code string) (*account.Account, error) {
	query := `
		SELECT id, code, name, type, nature, description, parent_id, active, created_at, updated_at
		FROM chart_of_accounts
		WHERE code = $1
	`

	return r.scanOne(ctx, query, code)
}

// List returns all accounts in insertion order
func (r *AccountRepository) List(ctx context.Context) ([]*account.Account, error) {
	query := `
		SELECT id, code, name, type, nature, description, parent_id, active, created_at, updated_at
		FROM chart_of_accounts
		ORDER BY seq
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list accounts", "error", err)
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) scanOne(ctx context.Context, query string, arg interface{}) (*account.Account, error) {
	acc, err := scanAccount(r.querier.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get account", "error", err)
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return acc, nil
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var acc account.Account
	err := row.Scan(
		&acc.ID,
		&acc.Code,
		&acc.Name,
		&acc.Type,
		&acc.Nature,
		&acc.Description,
		&acc.ParentID,
		&acc.Active,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}
