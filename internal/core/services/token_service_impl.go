package services

import (
	"context"
	"fmt"
	"time"

	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/utils"
)

// Purposes for single-use tokens issued by the token service.
const (
	PurposeEmailVerification = "email_verification"
	PurposePasswordReset     = "password_reset"
)

// TokenConfig holds the signing material and lifetimes for issued tokens.
type TokenConfig struct {
	AccessSecret  string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
	PurposeSecret string
	Issuer        string
}

// tokenServiceImpl implements the TokenSvcFacade interface
type tokenServiceImpl struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      TokenConfig
}

// NewTokenServiceImpl creates a new token service
func NewTokenServiceImpl(userRepo portsrepo.UserRepositoryFacade, cfg TokenConfig) portssvc.TokenSvcFacade {
	return &tokenServiceImpl{userRepo: userRepo, cfg: cfg}
}

// Ensure tokenServiceImpl implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenServiceImpl)(nil)

func (s *tokenServiceImpl) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateAccessJWT(user.UserID, string(user.Role), s.cfg.AccessSecret, s.cfg.AccessExpiry, s.cfg.Issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

// GenerateRefreshToken issues an opaque random token and stores only its
// SHA256 hash against the user. Issuing a new token invalidates the previous one.
func (s *tokenServiceImpl) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiresAt := time.Now().Add(s.cfg.RefreshExpiry)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(raw), expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return raw, expiresAt, nil
}

func (s *tokenServiceImpl) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("refresh token user lookup failed: %w", apperrors.ErrUnauthorized)
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiresAt == nil {
		return nil, fmt.Errorf("no active refresh token: %w", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*user.RefreshTokenExpiresAt) {
		return nil, fmt.Errorf("refresh token expired: %w", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(refreshTokenString, user.RefreshTokenHash) {
		return nil, fmt.Errorf("refresh token mismatch: %w", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *tokenServiceImpl) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}

func (s *tokenServiceImpl) GeneratePurposeToken(ctx context.Context, userID string, purpose string, ttl time.Duration) (string, error) {
	token, err := utils.GeneratePurposeJWT(userID, purpose, s.cfg.PurposeSecret, ttl, s.cfg.Issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", purpose, err)
	}
	return token, nil
}

func (s *tokenServiceImpl) ValidatePurposeToken(ctx context.Context, tokenString string, purpose string) (string, error) {
	claims, err := utils.ParsePurposeJWT(tokenString, s.cfg.PurposeSecret, purpose)
	if err != nil {
		return "", fmt.Errorf("invalid %s token: %w", purpose, apperrors.ErrUnauthorized)
	}
	return claims.Subject, nil
}
