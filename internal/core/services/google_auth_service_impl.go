package services

import (
	"context"
	"errors"
	"fmt"

	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

// GoogleAuthConfig holds the OAuth client credentials for Google sign-in.
type GoogleAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// googleAuthServiceImpl implements the GoogleAuthSvcFacade interface
type googleAuthServiceImpl struct {
	BaseService
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleAuthServiceImpl creates a new Google auth service
func NewGoogleAuthServiceImpl(cfg GoogleAuthConfig) portssvc.GoogleAuthSvcFacade {
	return &googleAuthServiceImpl{
		clientID: cfg.ClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleAuthServiceImpl implements the GoogleAuthSvcFacade interface
var _ portssvc.GoogleAuthSvcFacade = (*googleAuthServiceImpl)(nil)

// ValidateGoogleIDToken validates an ID token received from Google and
// returns the payload if valid.
func (s *googleAuthServiceImpl) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, errors.New("google client ID is not configured")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}

// ExchangeCodeForToken exchanges an OAuth authorization code for a Google token.
func (s *googleAuthServiceImpl) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}
