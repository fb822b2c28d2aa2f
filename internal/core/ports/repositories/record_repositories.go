package repositories

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// RecordReader defines read operations for record data
type RecordReader interface {
	// FindRecordByID retrieves a specific record by its unique identifier.
	FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error)

	// ListRecordsByAccount retrieves all records belonging to an account,
	// newest first.
	ListRecordsByAccount(ctx context.Context, accountID string) ([]domain.Record, error)
}

// RecordWriter defines write operations for record data
type RecordWriter interface {
	// SaveRecord persists a new record.
	SaveRecord(ctx context.Context, record domain.Record) error

	// DeleteRecord removes a record and, through the schema's cascade, its
	// comments.
	DeleteRecord(ctx context.Context, recordID string) error
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
	RecordWriter
}
