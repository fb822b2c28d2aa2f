package services

import (
	"context"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new unverified user and sends the verification mail.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// VerifyUser redeems an email verification token and marks the user verified.
	VerifyUser(ctx context.Context, token string) (*domain.User, error)

	// UpdateUserRole changes a user's role. Only the closed set of known
	// roles is accepted.
	UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error)
}

// UserPasswordSvc defines the password reset flow
type UserPasswordSvc interface {
	// RequestPasswordReset sends a reset mail if the email belongs to a user.
	// Unknown emails are not an error, to avoid account enumeration.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword redeems a reset token and stores the new password hash.
	ResetPassword(ctx context.Context, token string, newPassword string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with email and password.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// AuthenticateGoogleUser resolves or provisions a user from a verified
	// Google ID token payload.
	AuthenticateGoogleUser(ctx context.Context, email string, name string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserPasswordSvc
	UserAuthSvc
}
