package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/core/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/SscSPs/procedure_control_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "carla",
		Password: "password123",
		Name:     "Carla Souza",
		Role:     "faturamento",
	}
	creatorID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "carla").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "carla" &&
			user.Name == "Carla Souza" &&
			user.Role == domain.RoleBilling &&
			user.PasswordHash != "" &&
			user.PasswordHash != "password123" &&
			user.CreatedBy == creatorID
	})).Return(nil).Once()

	created, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.UserID)
	suite.True(utils.CheckPasswordHash("password123", created.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Username: "carla"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "carla").Return(existing, nil).Once()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "carla",
		Password: "password123",
		Name:     "Carla Souza",
		Role:     "user",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_UnknownRole() {
	ctx := context.Background()

	created, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Username: "carla",
		Password: "password123",
		Name:     "Carla Souza",
		Role:     "supervisor",
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_ChangesRoleAndKeepsHash() {
	ctx := context.Background()
	userID := uuid.NewString()
	hash, _ := utils.HashPassword("original-pass")
	existing := &domain.User{
		UserID:       userID,
		Username:     "joao",
		PasswordHash: hash,
		Name:         "João Lima",
		Role:         domain.RoleStandard,
	}
	newRole := "admin"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == userID &&
			user.Role == domain.RoleAdmin &&
			user.PasswordHash == hash
	})).Return(nil).Once()

	updated, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &newRole}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, updated.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- DeleteUser Tests ---

func (suite *UserServiceTestSuite) TestDeleteUser_Success() {
	ctx := context.Background()
	targetID := uuid.NewString()
	requesterID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, targetID).Return(&domain.User{UserID: targetID}, nil).Once()
	suite.mockUserRepo.On("DeleteUser", ctx, targetID).Return(nil).Once()

	err := suite.service.DeleteUser(ctx, targetID, requesterID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteUser_SelfDeletionForbidden() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := suite.service.DeleteUser(ctx, userID, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "DeleteUser", mock.Anything, mock.Anything)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, _ := utils.HashPassword("s3cret-pass")
	user := &domain.User{UserID: uuid.NewString(), Username: "ana", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ana").Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "ana", "s3cret-pass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authenticated.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, _ := utils.HashPassword("s3cret-pass")
	user := &domain.User{UserID: uuid.NewString(), Username: "ana", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ana").Return(user, nil).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "ana", "wrong-pass")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authenticated, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authenticated)
	// Unknown accounts must be indistinguishable from bad passwords.
	suite.ErrorIs(err, apperrors.ErrForbidden)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrNotFound)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
