package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/registry"
)

// recordServiceImpl implements the RecordSvcFacade interface
type recordServiceImpl struct {
	BaseService
	recordRepo     portsrepo.RecordRepositoryFacade
	accountService portssvc.AccountReaderSvc
}

// NewRecordServiceImpl creates a new record service
func NewRecordServiceImpl(repo portsrepo.RecordRepositoryFacade, accountService portssvc.AccountReaderSvc) portssvc.RecordSvcFacade {
	return &recordServiceImpl{
		recordRepo:     repo,
		accountService: accountService,
	}
}

// Ensure recordServiceImpl implements the RecordSvcFacade interface
var _ portssvc.RecordSvcFacade = (*recordServiceImpl)(nil)

func (s *recordServiceImpl) CreateRecord(ctx context.Context, principal domain.Principal, accountID string, req dto.CreateRecordRequest) (*domain.Record, error) {
	if _, err := s.accountService.VerifyAccountAccess(ctx, principal, accountID); err != nil {
		return nil, err
	}

	// Registry membership checks run before anything is persisted.
	if !registry.HasCategory(req.TypeID) {
		return nil, fmt.Errorf("unknown record type %s: %w", req.TypeID, apperrors.ErrValidation)
	}
	if !registry.HasCurrency(req.CurrencyID) {
		return nil, fmt.Errorf("unknown currency %s: %w", req.CurrencyID, apperrors.ErrValidation)
	}

	now := time.Now()
	record := domain.Record{
		RecordID:    uuid.NewString(),
		AccountID:   accountID,
		Amount:      req.Amount,
		Description: req.Description,
		TypeID:      req.TypeID,
		CurrencyID:  req.CurrencyID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.recordRepo.SaveRecord(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to save record",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	s.LogInfo(ctx, "Record created",
		slog.String("record_id", record.RecordID),
		slog.String("account_id", accountID))
	return &record, nil
}

func (s *recordServiceImpl) ListRecords(ctx context.Context, principal domain.Principal, accountID string) ([]domain.Record, error) {
	if _, err := s.accountService.VerifyAccountAccess(ctx, principal, accountID); err != nil {
		return nil, err
	}

	records, err := s.recordRepo.ListRecordsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records",
			slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// GetRecord resolves a record and proves the requesting user owns the account
// it belongs to. The record is fetched first because its account id is what
// the ownership check needs.
func (s *recordServiceImpl) GetRecord(ctx context.Context, principal domain.Principal, recordID string) (*domain.Record, error) {
	if principal.IsZero() {
		return nil, fmt.Errorf("no authenticated user: %w", apperrors.ErrUnauthorized)
	}

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if _, err := s.accountService.VerifyAccountAccess(ctx, principal, record.AccountID); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *recordServiceImpl) DeleteRecord(ctx context.Context, principal domain.Principal, accountID string, recordID string) error {
	if _, err := s.accountService.VerifyAccountAccess(ctx, principal, accountID); err != nil {
		return err
	}

	record, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		return err
	}
	if record.AccountID != accountID {
		return fmt.Errorf("record %s does not belong to account %s: %w", recordID, accountID, apperrors.ErrNotFound)
	}

	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		s.LogError(ctx, err, "Failed to delete record",
			slog.String("record_id", recordID))
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.LogInfo(ctx, "Record deleted",
		slog.String("record_id", recordID),
		slog.String("account_id", accountID))
	return nil
}
