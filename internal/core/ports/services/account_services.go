package services

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// ListAccountsForUser returns all accounts owned by the requesting user.
	ListAccountsForUser(ctx context.Context, principal domain.Principal) ([]domain.Account, error)

	// VerifyAccountAccess resolves an account and proves the requesting user
	// owns it. It is the single ownership gate used by every account-scoped
	// operation.
	VerifyAccountAccess(ctx context.Context, principal domain.Principal, accountID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount creates a new account for the requesting user. The first
	// account is free; additional accounts require elevated permission.
	CreateAccount(ctx context.Context, principal domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account the requesting user owns, along with
	// everything beneath it.
	DeleteAccount(ctx context.Context, principal domain.Principal, accountID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
