package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
)

type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(db *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{BaseRepository{Pool: db}}
}

// Ensure PgxRecordRepository implements portsrepo.RecordRepositoryFacade
var _ portsrepo.RecordRepositoryFacade = (*PgxRecordRepository)(nil)

func (r *PgxRecordRepository) SaveRecord(ctx context.Context, record domain.Record) error {
	query := `
        INSERT INTO records (record_id, account_id, amount, description, type_id, currency_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		record.RecordID,
		record.AccountID,
		record.Amount,
		record.Description,
		record.TypeID,
		record.CurrencyID,
		record.CreatedAt,
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

func (r *PgxRecordRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.Record, error) {
	query := `
        SELECT record_id, account_id, amount, description, type_id, currency_id, created_at, updated_at
        FROM records
        WHERE record_id = $1;
    `
	var record domain.Record
	err := r.Pool.QueryRow(ctx, query, recordID).Scan(
		&record.RecordID,
		&record.AccountID,
		&record.Amount,
		&record.Description,
		&record.TypeID,
		&record.CurrencyID,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find record by ID %s: %w", recordID, err)
	}
	return &record, nil
}

func (r *PgxRecordRepository) ListRecordsByAccount(ctx context.Context, accountID string) ([]domain.Record, error) {
	query := `
        SELECT record_id, account_id, amount, description, type_id, currency_id, created_at, updated_at
        FROM records
        WHERE account_id = $1
        ORDER BY created_at DESC;
    `
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records for account %s: %w", accountID, err)
	}
	defer rows.Close()

	records := []domain.Record{}
	for rows.Next() {
		var record domain.Record
		err := rows.Scan(
			&record.RecordID,
			&record.AccountID,
			&record.Amount,
			&record.Description,
			&record.TypeID,
			&record.CurrencyID,
			&record.CreatedAt,
			&record.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan record row: %w", err)
		}
		records = append(records, record)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating record rows: %w", rows.Err())
	}
	return records, nil
}

func (r *PgxRecordRepository) DeleteRecord(ctx context.Context, recordID string) error {
	// Comments go with it via ON DELETE CASCADE.
	query := `DELETE FROM records WHERE record_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete record %s: %w", recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
