package domain

// Account is a named bucket of records owned by exactly one user.
// UserID is immutable after creation; every account has exactly one
// owning user for its lifetime.
type Account struct {
	AccountID   string `json:"accountID"` // Primary Key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"` // Nullable user description
	UserID      string `json:"userID"`      // FK -> users.user_id (NON-NULL, immutable)
}
