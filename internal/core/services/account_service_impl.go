package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/authz"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountServiceImpl creates a new account service
func NewAccountServiceImpl(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{accountRepo: repo}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

// VerifyAccountAccess is the ownership gate for every account-scoped
// operation. The checks run in a fixed order so callers see a stable error:
// missing principal first, then missing account, then foreign account.
func (s *accountServiceImpl) VerifyAccountAccess(ctx context.Context, principal domain.Principal, accountID string) (*domain.Account, error) {
	if principal.IsZero() {
		return nil, fmt.Errorf("no authenticated user: %w", apperrors.ErrUnauthorized)
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed during access check",
			slog.String("account_id", accountID),
			slog.String("error", err.Error()))
		return nil, err
	}

	if account.UserID != principal.UserID {
		s.LogInfo(ctx, "Denied access to account owned by another user",
			slog.String("account_id", accountID),
			slog.String("user_id", principal.UserID))
		return nil, fmt.Errorf("account %s is not owned by user %s: %w", accountID, principal.UserID, apperrors.ErrForbidden)
	}

	return account, nil
}

func (s *accountServiceImpl) CreateAccount(ctx context.Context, principal domain.Principal, req dto.CreateAccountRequest) (*domain.Account, error) {
	if principal.IsZero() {
		return nil, fmt.Errorf("no authenticated user: %w", apperrors.ErrUnauthorized)
	}

	// First account is free; any further account needs elevated permission.
	// The count and the insert are not atomic, so two concurrent first-account
	// requests can both pass the gate. The worst case is one extra account for
	// a plain user, which is acceptable.
	count, err := s.accountRepo.CountAccountsByUser(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to count accounts for user",
			slog.String("user_id", principal.UserID))
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	if count >= 1 && !authz.CheckAccess(principal.Role, authz.PermCreateMultipleAccounts) {
		return nil, fmt.Errorf("role %s may not create additional accounts: %w", principal.Role, apperrors.ErrForbidden)
	}

	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		UserID:      principal.UserID,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("user_id", principal.UserID))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("user_id", principal.UserID))
	return &account, nil
}

func (s *accountServiceImpl) ListAccountsForUser(ctx context.Context, principal domain.Principal) ([]domain.Account, error) {
	if principal.IsZero() {
		return nil, fmt.Errorf("no authenticated user: %w", apperrors.ErrUnauthorized)
	}

	accounts, err := s.accountRepo.ListAccountsByUser(ctx, principal.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts",
			slog.String("user_id", principal.UserID))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, principal domain.Principal, accountID string) error {
	if _, err := s.VerifyAccountAccess(ctx, principal, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account",
			slog.String("account_id", accountID))
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.LogInfo(ctx, "Account deleted",
		slog.String("account_id", accountID),
		slog.String("user_id", principal.UserID))
	return nil
}
