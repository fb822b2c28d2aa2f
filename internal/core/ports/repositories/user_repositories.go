package repositories

import (
	"context"
	"time"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a specific user by their email address.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's mutable details.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserVerified flips the verified flag for a user.
	MarkUserVerified(ctx context.Context, userID string) error

	// UpdateUserRole changes a user's role.
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) error

	// UpdateUserPassword replaces a user's password hash.
	UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error
}

// UserTokenWriter defines operations on stored refresh token state
type UserTokenWriter interface {
	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh token.
	UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error

	// ClearRefreshToken removes the stored refresh token state for a user.
	ClearRefreshToken(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserTokenWriter
}
