package services

import (
	"context"
	"time"

	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade defines the interface for token management services.
type TokenSvcFacade interface {
	// GenerateAccessToken issues a short-lived JWT carrying the user's id and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken issues an opaque refresh token and persists its hash.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateAndParseRefreshToken validates a refresh token string against a
	// user's stored token details. It returns the user if the token is valid
	// and not expired.
	ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error)

	// ClearRefreshToken drops the stored refresh token for a user, ending the session.
	ClearRefreshToken(ctx context.Context, userID string) error

	// GeneratePurposeToken issues a single-purpose JWT (email verification,
	// password reset) bound to a user.
	GeneratePurposeToken(ctx context.Context, userID string, purpose string, ttl time.Duration) (string, error)

	// ValidatePurposeToken checks a single-purpose JWT and returns the user id
	// it was issued for.
	ValidatePurposeToken(ctx context.Context, tokenString string, purpose string) (string, error)
}

// GoogleAuthSvcFacade defines the interface for Google sign-in operations.
type GoogleAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string from Google and
	// returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)

	// ExchangeCodeForToken exchanges an OAuth authorization code for a Google
	// token. The id_token extra field carries the identity claims.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
}
