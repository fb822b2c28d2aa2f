package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/core/services"
	"github.com/saiharsha-plivo/money-manager/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.TokenSvcFacade
	user     *domain.User
}

func (suite *TokenServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewTokenServiceImpl(suite.mockRepo, services.TokenConfig{
		AccessSecret:  "access-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
		PurposeSecret: "purpose-secret",
		Issuer:        "money-manager-test",
	})
	suite.user = &domain.User{UserID: uuid.NewString(), Role: domain.RoleUser}
}

// --- Access tokens ---

func (suite *TokenServiceTestSuite) TestGenerateAccessToken_CarriesRoleClaim() {
	ctx := context.Background()
	suite.user.Role = domain.RoleAdmin

	token, expiresAt, err := suite.service.GenerateAccessToken(ctx, suite.user)

	suite.Require().NoError(err)
	suite.NotEmpty(token)
	suite.True(expiresAt.After(time.Now()))

	claims, err := utils.ParseAccessJWT(token, "access-secret")
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, claims.Subject)
	suite.Equal(string(domain.RoleAdmin), claims.Role)
}

// --- Refresh tokens ---

func (suite *TokenServiceTestSuite) TestRefreshToken_RoundTrip() {
	ctx := context.Background()
	var storedHash string
	var storedExpiry time.Time

	suite.mockRepo.On("UpdateRefreshToken", ctx, suite.user.UserID, mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
			storedExpiry = args.Get(3).(time.Time)
		}).Return(nil).Once()

	raw, expiresAt, err := suite.service.GenerateRefreshToken(ctx, suite.user)
	suite.Require().NoError(err)
	suite.NotEmpty(raw)
	// Only the hash crosses the repository boundary.
	suite.NotEqual(raw, storedHash)
	suite.Equal(utils.HashRefreshToken(raw), storedHash)
	suite.Equal(expiresAt, storedExpiry)

	stored := &domain.User{
		UserID:                suite.user.UserID,
		RefreshTokenHash:      storedHash,
		RefreshTokenExpiresAt: &storedExpiry,
	}
	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, raw)
	suite.Require().NoError(err)
	suite.Equal(stored, got)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_Expired() {
	ctx := context.Background()
	past := time.Now().Add(-time.Minute)
	stored := &domain.User{
		UserID:                suite.user.UserID,
		RefreshTokenHash:      utils.HashRefreshToken("some-token"),
		RefreshTokenExpiresAt: &past,
	}
	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, "some-token")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_HashMismatch() {
	ctx := context.Background()
	future := time.Now().Add(time.Hour)
	stored := &domain.User{
		UserID:                suite.user.UserID,
		RefreshTokenHash:      utils.HashRefreshToken("the-real-token"),
		RefreshTokenExpiresAt: &future,
	}
	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, "a-forged-token")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *TokenServiceTestSuite) TestValidateRefreshToken_NoneStored() {
	ctx := context.Background()
	stored := &domain.User{UserID: suite.user.UserID}
	suite.mockRepo.On("FindUserByID", ctx, suite.user.UserID).Return(stored, nil).Once()

	got, err := suite.service.ValidateAndParseRefreshToken(ctx, suite.user.UserID, "anything")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- Purpose tokens ---

func (suite *TokenServiceTestSuite) TestPurposeToken_RoundTrip() {
	ctx := context.Background()

	token, err := suite.service.GeneratePurposeToken(ctx, suite.user.UserID, services.PurposeEmailVerification, time.Hour)
	suite.Require().NoError(err)

	userID, err := suite.service.ValidatePurposeToken(ctx, token, services.PurposeEmailVerification)
	suite.Require().NoError(err)
	suite.Equal(suite.user.UserID, userID)
}

func (suite *TokenServiceTestSuite) TestPurposeToken_PurposeMismatch() {
	ctx := context.Background()

	token, err := suite.service.GeneratePurposeToken(ctx, suite.user.UserID, services.PurposeEmailVerification, time.Hour)
	suite.Require().NoError(err)

	// A verification token must not open the password reset door.
	userID, err := suite.service.ValidatePurposeToken(ctx, token, services.PurposePasswordReset)
	suite.Require().Error(err)
	suite.Empty(userID)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}
