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
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserVerified(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.UserRole) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUserPassword(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockTokenService is a mock type for the TokenSvcFacade interface
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockTokenService) ValidateAndParseRefreshToken(ctx context.Context, userID string, refreshTokenString string) (*domain.User, error) {
	args := m.Called(ctx, userID, refreshTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockTokenService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTokenService) GeneratePurposeToken(ctx context.Context, userID string, purpose string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, userID, purpose, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) ValidatePurposeToken(ctx context.Context, tokenString string, purpose string) (string, error) {
	args := m.Called(ctx, tokenString, purpose)
	return args.String(0), args.Error(1)
}

// MockMailSender is a mock type for the mail.Sender interface
type MockMailSender struct {
	mock.Mock
}

func (m *MockMailSender) SendVerificationMail(ctx context.Context, to string, username string, link string) error {
	args := m.Called(ctx, to, username, link)
	return args.Error(0)
}

func (m *MockMailSender) SendPasswordResetMail(ctx context.Context, to string, username string, link string) error {
	args := m.Called(ctx, to, username, link)
	return args.Error(0)
}

// --- Test Suite Setup ---

const testBaseURL = "https://money.example.com"

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo   *MockUserRepository
	mockTokens *MockTokenService
	mockMailer *MockMailSender
	service    portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mockTokens = new(MockTokenService)
	suite.mockMailer = new(MockMailSender)
	suite.service = services.NewUserServiceImpl(suite.mockRepo, suite.mockTokens, suite.mockMailer, testBaseURL)
}

func (suite *UserServiceTestSuite) verifiedUser(password string) *domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return &domain.User{
		UserID:       uuid.NewString(),
		Username:     "harsha",
		Email:        "harsha@example.com",
		Role:         domain.RoleUser,
		Verified:     true,
		PasswordHash: hash,
	}
}

// --- RegisterUser ---

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "harsha", Email: "harsha@example.com", Password: "s3cretpass"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email && u.Role == domain.RoleUser && !u.Verified && u.PasswordHash != req.Password
	})).Return(nil).Once()
	suite.mockTokens.On("GeneratePurposeToken", ctx, mock.AnythingOfType("string"), services.PurposeEmailVerification, 24*time.Hour).Return("verify-token", nil).Once()
	suite.mockMailer.On("SendVerificationMail", ctx, req.Email, req.Username, testBaseURL+"/api/v1/auth/verify/verify-token").Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.NotEmpty(user.UserID)
	suite.False(user.Verified)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "harsha", Email: "taken@example.com", Password: "s3cretpass"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(&domain.User{UserID: uuid.NewString(), Email: req.Email}, nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegisterUser_MailFailureDoesNotFailRegistration() {
	ctx := context.Background()
	req := dto.RegisterUserRequest{Username: "harsha", Email: "harsha@example.com", Password: "s3cretpass"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()
	suite.mockTokens.On("GeneratePurposeToken", ctx, mock.AnythingOfType("string"), services.PurposeEmailVerification, 24*time.Hour).Return("", assert.AnError).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- VerifyUser ---

func (suite *UserServiceTestSuite) TestVerifyUser_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &domain.User{UserID: userID, Verified: true}

	suite.mockTokens.On("ValidatePurposeToken", ctx, "tok", services.PurposeEmailVerification).Return(userID, nil).Once()
	suite.mockRepo.On("MarkUserVerified", ctx, userID).Return(nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()

	got, err := suite.service.VerifyUser(ctx, "tok")

	suite.Require().NoError(err)
	suite.True(got.Verified)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestVerifyUser_BadToken() {
	ctx := context.Background()

	suite.mockTokens.On("ValidatePurposeToken", ctx, "garbage", services.PurposeEmailVerification).Return("", apperrors.ErrUnauthorized).Once()

	got, err := suite.service.VerifyUser(ctx, "garbage")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkUserVerified", mock.Anything, mock.Anything)
}

// --- AuthenticateUser ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	user := suite.verifiedUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "correct-horse")

	suite.Require().NoError(err)
	suite.Equal(user, got)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	user := suite.verifiedUser("correct-horse")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "battery-staple")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmail() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(got)
	// Same failure as a wrong password so callers cannot probe for accounts.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnverifiedEmail() {
	ctx := context.Background()
	user := suite.verifiedUser("correct-horse")
	user.Verified = false

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateUser(ctx, user.Email, "correct-horse")

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- AuthenticateGoogleUser ---

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_ExistingUser() {
	ctx := context.Background()
	user := suite.verifiedUser("irrelevant")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()

	got, err := suite.service.AuthenticateGoogleUser(ctx, user.Email, "Harsha")

	suite.Require().NoError(err)
	suite.Equal(user, got)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateGoogleUser_ProvisionsVerifiedUser() {
	ctx := context.Background()
	email := "new@example.com"

	suite.mockRepo.On("FindUserByEmail", ctx, email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == email && u.Username == "New Person" && u.Verified && u.Role == domain.RoleUser
	})).Return(nil).Once()

	got, err := suite.service.AuthenticateGoogleUser(ctx, email, "New Person")

	suite.Require().NoError(err)
	suite.Require().NotNil(got)
	suite.True(got.Verified)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- UpdateUserRole ---

func (suite *UserServiceTestSuite) TestUpdateUserRole_PromoteToAdmin() {
	ctx := context.Background()
	userID := uuid.NewString()
	promoted := &domain.User{UserID: userID, Role: domain.RoleAdmin}

	suite.mockRepo.On("UpdateUserRole", ctx, userID, domain.RoleAdmin).Return(nil).Once()
	suite.mockRepo.On("FindUserByID", ctx, userID).Return(promoted, nil).Once()

	got, err := suite.service.UpdateUserRole(ctx, userID, domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, got.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateUserRole_UnknownRoleRejected() {
	ctx := context.Background()

	got, err := suite.service.UpdateUserRole(ctx, uuid.NewString(), domain.UserRole("owner"))

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

// --- Password reset ---

func (suite *UserServiceTestSuite) TestRequestPasswordReset_UnknownEmailIsSilent() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.RequestPasswordReset(ctx, "ghost@example.com")

	suite.Require().NoError(err)
	suite.mockMailer.AssertNotCalled(suite.T(), "SendPasswordResetMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRequestPasswordReset_SendsMail() {
	ctx := context.Background()
	user := suite.verifiedUser("old-pass")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(user, nil).Once()
	suite.mockTokens.On("GeneratePurposeToken", ctx, user.UserID, services.PurposePasswordReset, time.Hour).Return("reset-token", nil).Once()
	suite.mockMailer.On("SendPasswordResetMail", ctx, user.Email, user.Username, testBaseURL+"/reset-password?token=reset-token").Return(nil).Once()

	err := suite.service.RequestPasswordReset(ctx, user.Email)

	suite.Require().NoError(err)
	suite.mockMailer.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPassword_SuccessClearsRefreshToken() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockTokens.On("ValidatePurposeToken", ctx, "reset-token", services.PurposePasswordReset).Return(userID, nil).Once()
	suite.mockRepo.On("UpdateUserPassword", ctx, userID, mock.AnythingOfType("string")).Return(nil).Once()
	suite.mockRepo.On("ClearRefreshToken", ctx, userID).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, "reset-token", "brand-new-pass")

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestResetPassword_BadToken() {
	ctx := context.Background()

	suite.mockTokens.On("ValidatePurposeToken", ctx, "garbage", services.PurposePasswordReset).Return("", apperrors.ErrUnauthorized).Once()

	err := suite.service.ResetPassword(ctx, "garbage", "brand-new-pass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserPassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
