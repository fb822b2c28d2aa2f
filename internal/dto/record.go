package dto

import (
	"time"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecordRequest defines the data needed to create a new record.
// TypeID and CurrencyID must name entries in the category and currency
// registries; the service rejects anything else.
type CreateRecordRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=500"`
	TypeID      string          `json:"typeID" binding:"required"`
	CurrencyID  string          `json:"currencyID" binding:"required"`
}

// RecordResponse is the API representation of a record.
type RecordResponse struct {
	RecordID    string          `json:"recordID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TypeID      string          `json:"typeID"`
	CurrencyID  string          `json:"currencyID"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ListRecordsResponse wraps the list of records in an account.
type ListRecordsResponse struct {
	Records []RecordResponse `json:"records"`
}

// ToRecordResponse converts a domain.Record to a RecordResponse DTO
func ToRecordResponse(record *domain.Record) RecordResponse {
	return RecordResponse{
		RecordID:    record.RecordID,
		AccountID:   record.AccountID,
		Amount:      record.Amount,
		Description: record.Description,
		TypeID:      record.TypeID,
		CurrencyID:  record.CurrencyID,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

// ToListRecordsResponse converts a slice of domain.Record to ListRecordsResponse DTO
func ToListRecordsResponse(records []domain.Record) ListRecordsResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = ToRecordResponse(&records[i])
	}
	return ListRecordsResponse{Records: out}
}
