package repositories

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByUser retrieves all accounts owned by the given user.
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)

	// CountAccountsByUser returns how many accounts the given user owns.
	CountAccountsByUser(ctx context.Context, userID string) (int, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// DeleteAccount removes an account and, through the schema's cascade,
	// every record and comment beneath it.
	DeleteAccount(ctx context.Context, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
