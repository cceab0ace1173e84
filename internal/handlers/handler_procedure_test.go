package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/SscSPs/procedure_control_app/internal/handlers"
	"github.com/SscSPs/procedure_control_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProcedureService ---
type MockProcedureService struct {
	mock.Mock
}

func (m *MockProcedureService) ListProcedures(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Procedure, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Procedure), args.Error(1)
}

func (m *MockProcedureService) GetProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error) {
	args := m.Called(ctx, procedureID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Procedure), args.Error(1)
}

func (m *MockProcedureService) GetProcedureOptions(ctx context.Context) (*domain.FilterOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FilterOptions), args.Error(1)
}

func (m *MockProcedureService) CreateProcedure(ctx context.Context, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error) {
	args := m.Called(ctx, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Procedure), args.Error(1)
}

func (m *MockProcedureService) UpdateProcedure(ctx context.Context, procedureID string, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error) {
	args := m.Called(ctx, procedureID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Procedure), args.Error(1)
}

func (m *MockProcedureService) DeleteProcedure(ctx context.Context, procedureID string, actorUserID string) error {
	args := m.Called(ctx, procedureID, actorUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProcedureSvcFacade = (*MockProcedureService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type ProcedureHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	jwtSecret            string
	mockProcedureService *MockProcedureService
	mockUserService      *MockUserService
}

func (suite *ProcedureHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(handlers.RegisterCustomValidators())

	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router = gin.New()
	suite.mockProcedureService = new(MockProcedureService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "pca-test",
	}
	container := &portssvc.ServiceContainer{
		User:      suite.mockUserService,
		Procedure: suite.mockProcedureService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// generateTestToken creates a dummy JWT for testing.
func (suite *ProcedureHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pca-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ProcedureHandlerTestSuite) authedRequest(method, target string, body []byte, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ProcedureHandlerTestSuite) TestListProcedures_Success() {
	userID := uuid.NewString()
	stored := []domain.Procedure{
		{
			ProcedureID:    uuid.NewString(),
			Date:           "2026-03-05",
			Region:         "Sudeste",
			State:          "SP",
			HospitalUnit:   "Hospital Central",
			PatientName:    "Maria dos Santos",
			ProcedureName:  "Hemodiálise",
			QtyPerformed:   1,
			QtyBilled:      1,
			ValuePerformed: decimal.RequireFromString("225.00"),
			ValueBilled:    decimal.RequireFromString("225.00"),
			ValuePaid:      decimal.Zero,
		},
	}

	suite.mockProcedureService.On("ListProcedures", mock.Anything, domain.FilterCriteria{Region: "Sudeste"}).
		Return(stored, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/procedures?region=Sudeste", nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ListProceduresResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(1, body.Total)
	suite.True(body.Procedures[0].Billed)
	suite.False(body.Procedures[0].Paid)
	suite.mockProcedureService.AssertExpectations(suite.T())
}

func (suite *ProcedureHandlerTestSuite) TestListProcedures_RejectsUnknownRegionFilter() {
	w := suite.authedRequest(http.MethodGet, "/api/v1/procedures?region=Atlantida", nil, uuid.NewString())
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProcedureService.AssertNotCalled(suite.T(), "ListProcedures", mock.Anything, mock.Anything)
}

func (suite *ProcedureHandlerTestSuite) TestListProcedures_RequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/procedures", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProcedureHandlerTestSuite) TestCreateProcedure_ValidationErrorsReturn422() {
	userID := uuid.NewString()
	fields := map[string]string{
		"patientName": "Este campo é obrigatório.",
		"date":        "A data não pode ser no futuro.",
	}

	suite.mockProcedureService.On("CreateProcedure", mock.Anything, mock.AnythingOfType("dto.SaveProcedureRequest"), userID).
		Return(nil, apperrors.NewValidationError(fields)).Once()

	payload, _ := json.Marshal(dto.SaveProcedureRequest{Date: "2030-01-01", Region: "Sudeste", State: "SP"})
	w := suite.authedRequest(http.MethodPost, "/api/v1/procedures", payload, userID)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	var body dto.ValidationErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(fields, body.Errors)
}

func (suite *ProcedureHandlerTestSuite) TestCreateProcedure_BillingGateReturns403() {
	userID := uuid.NewString()

	suite.mockProcedureService.On("CreateProcedure", mock.Anything, mock.AnythingOfType("dto.SaveProcedureRequest"), userID).
		Return(nil, apperrors.ErrForbidden).Once()

	payload, _ := json.Marshal(dto.SaveProcedureRequest{
		Date: "2026-03-05", Region: "Sudeste", State: "SP",
		HospitalUnit: "H", PatientName: "P", ProcedureName: "Proc",
		Billed: true,
	})
	w := suite.authedRequest(http.MethodPost, "/api/v1/procedures", payload, userID)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ProcedureHandlerTestSuite) TestGetProcedure_NotFoundReturns404() {
	userID := uuid.NewString()
	procedureID := uuid.NewString()

	suite.mockProcedureService.On("GetProcedureByID", mock.Anything, procedureID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/procedures/"+procedureID, nil, userID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProcedureHandlerTestSuite) TestDeleteProcedure_Returns204() {
	userID := uuid.NewString()
	procedureID := uuid.NewString()

	suite.mockProcedureService.On("DeleteProcedure", mock.Anything, procedureID, userID).
		Return(nil).Once()

	w := suite.authedRequest(http.MethodDelete, "/api/v1/procedures/"+procedureID, nil, userID)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockProcedureService.AssertExpectations(suite.T())
}

func (suite *ProcedureHandlerTestSuite) TestGetOptions_ReturnsCatalogs() {
	userID := uuid.NewString()
	options := &domain.FilterOptions{
		Regions:        domain.Regions,
		States:         domain.States,
		HospitalUnits:  []string{"Hospital Central"},
		ProcedureNames: []string{"Hemodiálise"},
		Creators:       []string{"Carla Souza"},
	}

	suite.mockProcedureService.On("GetProcedureOptions", mock.Anything).Return(options, nil).Once()

	w := suite.authedRequest(http.MethodGet, "/api/v1/procedures/options", nil, userID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.ProcedureOptionsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Len(body.Regions, 5)
	suite.Len(body.States, 27)
	suite.Equal([]string{"Hospital Central"}, body.HospitalUnits)
}

func TestProcedureHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProcedureHandlerTestSuite))
}
