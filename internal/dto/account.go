package dto

import (
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// AccountResponse is the API representation of an account.
type AccountResponse struct {
	AccountID   string `json:"accountID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      string `json:"userID"`
}

// ListAccountsResponse wraps the list of accounts owned by a user.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO
func ToAccountResponse(account *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:   account.AccountID,
		Name:        account.Name,
		Description: account.Description,
		UserID:      account.UserID,
	}
}

// ToListAccountsResponse converts a slice of domain.Account to ListAccountsResponse DTO
func ToListAccountsResponse(accounts []domain.Account) ListAccountsResponse {
	out := make([]AccountResponse, len(accounts))
	for i := range accounts {
		out[i] = ToAccountResponse(&accounts[i])
	}
	return ListAccountsResponse{Accounts: out}
}
