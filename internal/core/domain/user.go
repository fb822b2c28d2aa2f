package domain

import "time"

// UserRole defines the possible application-wide roles a user can hold.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleSuperUser UserRole = "superuser"
)

// IsValid reports whether the role is one of the closed set of known roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperUser:
		return true
	}
	return false
}

// User represents a registered user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	Verified     bool     `json:"verified"`
	PasswordHash string   `json:"-"` // Never expose the hash in JSON responses
	// Refresh token state; the raw token is never stored, only its SHA256 hash.
	RefreshTokenHash      string     `json:"-"`
	RefreshTokenExpiresAt *time.Time `json:"-"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// Principal is the authenticated actor making a request: the resolved
// user identity plus the role carried in its credential.
type Principal struct {
	UserID string
	Role   UserRole
}

// IsZero reports whether no principal was resolved for the request.
func (p Principal) IsZero() bool {
	return p.UserID == ""
}
