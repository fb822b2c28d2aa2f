package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portsrepo "github.com/saiharsha-plivo/money-manager/internal/core/ports/repositories"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/mail"
	"github.com/saiharsha-plivo/money-manager/internal/utils"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

// userServiceImpl implements the UserSvcFacade interface
type userServiceImpl struct {
	BaseService
	userRepo     portsrepo.UserRepositoryFacade
	tokenService portssvc.TokenSvcFacade
	mailer       mail.Sender
	baseURL      string
}

// NewUserServiceImpl creates a new user service. baseURL is the public origin
// used to build links in outbound mails.
func NewUserServiceImpl(userRepo portsrepo.UserRepositoryFacade, tokenService portssvc.TokenSvcFacade, mailer mail.Sender, baseURL string) portssvc.UserSvcFacade {
	return &userServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
		mailer:       mailer,
		baseURL:      baseURL,
	}
}

// Ensure userServiceImpl implements the UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userServiceImpl)(nil)

func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userServiceImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userServiceImpl) RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	if existing, err := s.userRepo.FindUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %s already registered: %w", req.Email, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		Role:         domain.RoleUser,
		Verified:     false,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	// A failed mail is logged but does not roll the registration back; the
	// user can ask for the link again via the forgot-password flow support.
	if err := s.sendVerificationMail(ctx, &user); err != nil {
		s.LogError(ctx, err, "Failed to send verification mail",
			slog.String("user_id", user.UserID))
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *userServiceImpl) sendVerificationMail(ctx context.Context, user *domain.User) error {
	token, err := s.tokenService.GeneratePurposeToken(ctx, user.UserID, PurposeEmailVerification, verificationTokenTTL)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/api/v1/auth/verify/%s", s.baseURL, token)
	return s.mailer.SendVerificationMail(ctx, user.Email, user.Username, link)
}

func (s *userServiceImpl) VerifyUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokenService.ValidatePurposeToken(ctx, token, PurposeEmailVerification)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.MarkUserVerified(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to mark user verified: %w", err)
	}

	s.LogInfo(ctx, "User verified", slog.String("user_id", userID))
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userServiceImpl) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		// Same error for unknown email and bad password.
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized)
	}

	if !user.Verified {
		return nil, fmt.Errorf("email not verified: %w", apperrors.ErrForbidden)
	}
	return user, nil
}

// AuthenticateGoogleUser resolves a user from a verified Google identity,
// provisioning one on first sign-in. Google has already proven ownership of
// the email, so the account starts verified.
func (s *userServiceImpl) AuthenticateGoogleUser(ctx context.Context, email string, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	// Password logins stay impossible for this account until a reset: the
	// stored hash is of a random secret nobody knows.
	random, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate placeholder password: %w", err)
	}
	hash, err := utils.HashPassword(random)
	if err != nil {
		return nil, fmt.Errorf("failed to hash placeholder password: %w", err)
	}

	newUser := domain.User{
		UserID:       uuid.NewString(),
		Username:     name,
		Email:        email,
		Role:         domain.RoleUser,
		Verified:     true,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to provision Google user", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User provisioned from Google sign-in", slog.String("user_id", newUser.UserID))
	return &newUser, nil
}

func (s *userServiceImpl) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) (*domain.User, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q: %w", role, apperrors.ErrValidation)
	}

	if err := s.userRepo.UpdateUserRole(ctx, userID, role); err != nil {
		s.LogError(ctx, err, "Failed to update user role",
			slog.String("user_id", userID),
			slog.String("role", string(role)))
		return nil, err
	}

	s.LogInfo(ctx, "User role updated",
		slog.String("user_id", userID),
		slog.String("role", string(role)))
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userServiceImpl) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Do not reveal whether the email is registered.
			s.LogDebug(ctx, "Password reset requested for unknown email")
			return nil
		}
		return fmt.Errorf("failed to look up user: %w", err)
	}

	token, err := s.tokenService.GeneratePurposeToken(ctx, user.UserID, PurposePasswordReset, passwordResetTokenTTL)
	if err != nil {
		return err
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token)
	if err := s.mailer.SendPasswordResetMail(ctx, user.Email, user.Username, link); err != nil {
		s.LogError(ctx, err, "Failed to send password reset mail",
			slog.String("user_id", user.UserID))
		return fmt.Errorf("failed to send password reset mail: %w", err)
	}
	return nil
}

func (s *userServiceImpl) ResetPassword(ctx context.Context, token string, newPassword string) error {
	userID, err := s.tokenService.ValidatePurposeToken(ctx, token, PurposePasswordReset)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdateUserPassword(ctx, userID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	// Existing sessions die with the old password.
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token after password reset",
			slog.String("user_id", userID))
	}

	s.LogInfo(ctx, "Password reset", slog.String("user_id", userID))
	return nil
}
