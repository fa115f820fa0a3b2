package service

import (
	"context"

	"github.com/contabilidade-ledger/internal/domain/account"
)

// AccountServiceImpl implements the AccountService interface
type AccountServiceImpl struct {
	accountRepo account.Repository
}

// NewAccountService creates a new chart-of-accounts service
func NewAccountService(accountRepo account.Repository) AccountService {
	return &AccountServiceImpl{
		accountRepo: accountRepo,
	}
}

// CreateAccount registers a new account after checking for a duplicate code
func (s *AccountServiceImpl) CreateAccount(ctx context.Context, code, name string, accType account.Type, nature account.Nature, description, parentID string) (*account.Account, error) {
	existing, err := s.accountRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, account.ErrDuplicateCode{Code: code}
	}

	acc, err := account.New(code, name, accType, nature, description, parentID)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.Create(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// GetAccountByID retrieves an account by its ID; (nil, nil) on a miss
func (s *AccountServiceImpl) GetAccountByID(ctx context.Context, id string) (*account.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

// ListAccounts returns all accounts in insertion order
func (s *AccountServiceImpl) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	return s.accountRepo.List(ctx)
}
