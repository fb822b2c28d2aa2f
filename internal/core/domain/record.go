package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single income or expense transaction belonging to exactly
// one account. TypeID and CurrencyID reference the static category and
// currency registries and are validated at creation time.
type Record struct {
	RecordID    string          `json:"recordID"`  // Primary Key (UUID)
	AccountID   string          `json:"accountID"` // FK -> accounts.account_id (NON-NULL, immutable)
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	TypeID      string          `json:"typeID"`     // Category registry id
	CurrencyID  string          `json:"currencyID"` // Currency registry id
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
