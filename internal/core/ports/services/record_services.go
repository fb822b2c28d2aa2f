package services

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// RecordReaderSvc defines read operations for record data
type RecordReaderSvc interface {
	// ListRecords returns all records in an account the requesting user owns.
	ListRecords(ctx context.Context, principal domain.Principal, accountID string) ([]domain.Record, error)

	// GetRecord resolves a record after proving the requesting user owns the
	// account it belongs to.
	GetRecord(ctx context.Context, principal domain.Principal, recordID string) (*domain.Record, error)
}

// RecordWriterSvc defines write operations for record data
type RecordWriterSvc interface {
	// CreateRecord adds a record to an account the requesting user owns.
	CreateRecord(ctx context.Context, principal domain.Principal, accountID string, req dto.CreateRecordRequest) (*domain.Record, error)

	// DeleteRecord removes a record from an account the requesting user owns.
	DeleteRecord(ctx context.Context, principal domain.Principal, accountID string, recordID string) error
}

// RecordSvcFacade combines all record-related service interfaces
type RecordSvcFacade interface {
	RecordReaderSvc
	RecordWriterSvc
}
