package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/saiharsha-plivo/money-manager/internal/apperrors"
	"github.com/saiharsha-plivo/money-manager/internal/core/domain"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/core/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) CountAccountsByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountServiceImpl(suite.mockRepo)
}

// --- VerifyAccountAccess ---

func (suite *AccountServiceTestSuite) TestVerifyAccountAccess_Owner() {
	ctx := context.Background()
	owner := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Main", UserID: owner.UserID}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	got, err := suite.service.VerifyAccountAccess(ctx, owner, accountID)

	suite.Require().NoError(err)
	suite.Equal(account, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestVerifyAccountAccess_NoPrincipal() {
	ctx := context.Background()

	got, err := suite.service.VerifyAccountAccess(ctx, domain.Principal{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	// The account must not even be looked up for an unauthenticated caller.
	suite.mockRepo.AssertNotCalled(suite.T(), "FindAccountByID", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestVerifyAccountAccess_AccountMissing() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accountID := uuid.NewString()

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.VerifyAccountAccess(ctx, principal, accountID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestVerifyAccountAccess_ForeignAccount() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, Name: "Someone else's", UserID: uuid.NewString()}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	got, err := suite.service.VerifyAccountAccess(ctx, principal, accountID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_FirstAccountFree() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	req := dto.CreateAccountRequest{Name: "Savings", Description: "Rainy day"}

	suite.mockRepo.On("CountAccountsByUser", ctx, principal.UserID).Return(0, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.MatchedBy(func(a domain.Account) bool {
		return a.UserID == principal.UserID && a.Name == req.Name
	})).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, principal, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.AccountID)
	suite.Equal(principal.UserID, created.UserID)
	suite.Equal(req.Description, created.Description)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SecondAccountDeniedForPlainUser() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}

	suite.mockRepo.On("CountAccountsByUser", ctx, principal.UserID).Return(1, nil).Once()

	created, err := suite.service.CreateAccount(ctx, principal, dto.CreateAccountRequest{Name: "Second"})

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SecondAccountAllowedForAdmin() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockRepo.On("CountAccountsByUser", ctx, principal.UserID).Return(3, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	created, err := suite.service.CreateAccount(ctx, principal, dto.CreateAccountRequest{Name: "Fourth"})

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_NoPrincipal() {
	ctx := context.Background()

	created, err := suite.service.CreateAccount(ctx, domain.Principal{}, dto.CreateAccountRequest{Name: "Nope"})

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.mockRepo.AssertNotCalled(suite.T(), "CountAccountsByUser", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_CountError() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	expectedErr := assert.AnError

	suite.mockRepo.On("CountAccountsByUser", ctx, principal.UserID).Return(0, expectedErr).Once()

	created, err := suite.service.CreateAccount(ctx, principal, dto.CreateAccountRequest{Name: "Broken"})

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

// --- ListAccountsForUser ---

func (suite *AccountServiceTestSuite) TestListAccountsForUser() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accounts := []domain.Account{
		{AccountID: uuid.NewString(), Name: "A", UserID: principal.UserID},
		{AccountID: uuid.NewString(), Name: "B", UserID: principal.UserID},
	}

	suite.mockRepo.On("ListAccountsByUser", ctx, principal.UserID).Return(accounts, nil).Once()

	got, err := suite.service.ListAccountsForUser(ctx, principal)

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- DeleteAccount ---

func (suite *AccountServiceTestSuite) TestDeleteAccount_Owner() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, UserID: principal.UserID}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("DeleteAccount", ctx, accountID).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, principal, accountID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_NonOwnerDenied() {
	ctx := context.Background()
	principal := domain.Principal{UserID: uuid.NewString(), Role: domain.RoleUser}
	accountID := uuid.NewString()
	account := &domain.Account{AccountID: accountID, UserID: uuid.NewString()}

	suite.mockRepo.On("FindAccountByID", ctx, accountID).Return(account, nil).Once()

	err := suite.service.DeleteAccount(ctx, principal, accountID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteAccount", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
