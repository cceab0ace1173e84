package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/core/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ProcedureServiceTestSuite struct {
	suite.Suite
	mockProcedureRepo *MockProcedureRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.ProcedureSvcFacade

	billingActor  *domain.User
	standardActor *domain.User
}

func (suite *ProcedureServiceTestSuite) SetupTest() {
	suite.mockProcedureRepo = new(MockProcedureRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewProcedureService(suite.mockProcedureRepo, suite.mockUserRepo)

	suite.billingActor = &domain.User{
		UserID: uuid.NewString(), Username: "carla", Name: "Carla Souza", Role: domain.RoleBilling,
	}
	suite.standardActor = &domain.User{
		UserID: uuid.NewString(), Username: "joao", Name: "João Lima", Role: domain.RoleStandard,
	}
}

func validRequest() dto.SaveProcedureRequest {
	return dto.SaveProcedureRequest{
		Date:           "2026-08-15",
		Region:         "Sudeste",
		State:          "SP",
		HospitalUnit:   "Hospital Central",
		PatientName:    "Maria dos Santos",
		ProcedureName:  "Hemodiálise",
		ValuePerformed: decimal.RequireFromString("225.00"),
	}
}

// --- CreateProcedure Tests ---

func (suite *ProcedureServiceTestSuite) TestCreateProcedure_DerivesStageTriples() {
	ctx := context.Background()
	req := validRequest()
	req.Billed = true

	suite.mockUserRepo.On("FindUserByID", ctx, suite.billingActor.UserID).Return(suite.billingActor, nil).Once()
	suite.mockProcedureRepo.On("SaveProcedure", ctx, mock.MatchedBy(func(p domain.Procedure) bool {
		return p.QtyPerformed == 1 &&
			p.QtyBilled == 1 &&
			p.QtyPaid == 0 &&
			p.ValueBilled.Equal(req.ValuePerformed) &&
			p.ValuePaid.IsZero() &&
			p.CreatedBy == "Carla Souza"
	})).Return(nil).Once()

	created, err := suite.service.CreateProcedure(ctx, req, suite.billingActor.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ProcedureID)
	suite.True(created.Billed())
	suite.False(created.Paid())
	suite.mockProcedureRepo.AssertExpectations(suite.T())
}

func (suite *ProcedureServiceTestSuite) TestCreateProcedure_InvalidInputReturnsFieldErrors() {
	ctx := context.Background()
	req := validRequest()
	req.PatientName = "   "
	req.Date = "2030-01-01"

	suite.mockUserRepo.On("FindUserByID", ctx, suite.billingActor.UserID).Return(suite.billingActor, nil).Once()

	created, err := suite.service.CreateProcedure(ctx, req, suite.billingActor.UserID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)

	var valErr *apperrors.ValidationError
	suite.Require().ErrorAs(err, &valErr)
	suite.Contains(valErr.Fields, "patientName")
	suite.Contains(valErr.Fields, "date")
	suite.mockProcedureRepo.AssertNotCalled(suite.T(), "SaveProcedure", mock.Anything, mock.Anything)
}

func (suite *ProcedureServiceTestSuite) TestCreateProcedure_StandardRoleCannotSetBilled() {
	ctx := context.Background()
	req := validRequest()
	req.Billed = true

	suite.mockUserRepo.On("FindUserByID", ctx, suite.standardActor.UserID).Return(suite.standardActor, nil).Once()

	created, err := suite.service.CreateProcedure(ctx, req, suite.standardActor.UserID)

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockProcedureRepo.AssertNotCalled(suite.T(), "SaveProcedure", mock.Anything, mock.Anything)
}

func (suite *ProcedureServiceTestSuite) TestCreateProcedure_StandardRoleCanRegister() {
	ctx := context.Background()
	req := validRequest()

	suite.mockUserRepo.On("FindUserByID", ctx, suite.standardActor.UserID).Return(suite.standardActor, nil).Once()
	suite.mockProcedureRepo.On("SaveProcedure", ctx, mock.AnythingOfType("domain.Procedure")).Return(nil).Once()

	created, err := suite.service.CreateProcedure(ctx, req, suite.standardActor.UserID)

	suite.Require().NoError(err)
	suite.False(created.Billed())
	suite.False(created.Paid())
}

// --- UpdateProcedure Tests ---

func (suite *ProcedureServiceTestSuite) TestUpdateProcedure_PreservesCreationAudit() {
	ctx := context.Background()
	req := validRequest()
	req.Billed = true
	req.Paid = true

	existing := &domain.Procedure{
		ProcedureID:   uuid.NewString(),
		Date:          "2026-07-01",
		Region:        "Sul",
		State:         "PR",
		HospitalUnit:  "Hospital Sul",
		PatientName:   "Pedro Alves",
		ProcedureName: "Consulta",
		QtyPerformed:  1,
	}
	existing.CreatedBy = "João Lima"

	suite.mockUserRepo.On("FindUserByID", ctx, suite.billingActor.UserID).Return(suite.billingActor, nil).Once()
	suite.mockProcedureRepo.On("FindProcedureByID", ctx, existing.ProcedureID).Return(existing, nil).Once()
	suite.mockProcedureRepo.On("SaveProcedure", ctx, mock.MatchedBy(func(p domain.Procedure) bool {
		return p.ProcedureID == existing.ProcedureID &&
			p.CreatedBy == "João Lima" &&
			p.LastModifiedBy == "Carla Souza" &&
			p.QtyBilled == 1 && p.QtyPaid == 1
	})).Return(nil).Once()

	updated, err := suite.service.UpdateProcedure(ctx, existing.ProcedureID, req, suite.billingActor.UserID)

	suite.Require().NoError(err)
	suite.Equal("João Lima", updated.CreatedBy)
	suite.Equal("Carla Souza", updated.LastModifiedBy)
	suite.mockProcedureRepo.AssertExpectations(suite.T())
}

func (suite *ProcedureServiceTestSuite) TestUpdateProcedure_StandardRoleCannotTouchBillingFlags() {
	ctx := context.Background()
	req := validRequest()
	req.Billed = true

	existing := &domain.Procedure{
		ProcedureID:   uuid.NewString(),
		Date:          "2026-08-15",
		Region:        "Sudeste",
		State:         "SP",
		HospitalUnit:  "Hospital Central",
		PatientName:   "Maria dos Santos",
		ProcedureName: "Hemodiálise",
		QtyPerformed:  1,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.standardActor.UserID).Return(suite.standardActor, nil).Once()
	suite.mockProcedureRepo.On("FindProcedureByID", ctx, existing.ProcedureID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateProcedure(ctx, existing.ProcedureID, req, suite.standardActor.UserID)

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ProcedureServiceTestSuite) TestUpdateProcedure_StandardRoleCanEditWhenFlagsUnchanged() {
	ctx := context.Background()
	req := validRequest()
	req.Billed = true
	req.Paid = true

	existing := &domain.Procedure{
		ProcedureID:   uuid.NewString(),
		Date:          "2026-08-15",
		Region:        "Sudeste",
		State:         "SP",
		HospitalUnit:  "Hospital Central",
		PatientName:   "Maria dos Santos",
		ProcedureName: "Hemodiálise",
		QtyPerformed:  1,
		QtyBilled:     1,
		QtyPaid:       1,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.standardActor.UserID).Return(suite.standardActor, nil).Once()
	suite.mockProcedureRepo.On("FindProcedureByID", ctx, existing.ProcedureID).Return(existing, nil).Once()
	suite.mockProcedureRepo.On("SaveProcedure", ctx, mock.AnythingOfType("domain.Procedure")).Return(nil).Once()

	updated, err := suite.service.UpdateProcedure(ctx, existing.ProcedureID, req, suite.standardActor.UserID)

	suite.Require().NoError(err)
	suite.True(updated.Billed())
	suite.True(updated.Paid())
}

// --- DeleteProcedure Tests ---

func (suite *ProcedureServiceTestSuite) TestDeleteProcedure_AbsentIDIsNoOp() {
	ctx := context.Background()
	procedureID := uuid.NewString()

	suite.mockProcedureRepo.On("DeleteProcedure", ctx, procedureID).Return(nil).Once()

	err := suite.service.DeleteProcedure(ctx, procedureID, suite.standardActor.UserID)

	suite.Require().NoError(err)
	suite.mockProcedureRepo.AssertExpectations(suite.T())
}

// --- ListProcedures Tests ---

func (suite *ProcedureServiceTestSuite) TestListProcedures_AppliesCriteria() {
	ctx := context.Background()
	stored := []domain.Procedure{
		{ProcedureID: "a", Date: "2026-01-10", Region: "Sul", State: "PR", HospitalUnit: "H1", PatientName: "Ana", ProcedureName: "Consulta"},
		{ProcedureID: "b", Date: "2026-02-10", Region: "Sudeste", State: "SP", HospitalUnit: "H2", PatientName: "Bruno", ProcedureName: "Exame"},
	}

	suite.mockProcedureRepo.On("FindProcedures", ctx).Return(stored, nil).Once()

	out, err := suite.service.ListProcedures(ctx, domain.FilterCriteria{Region: "Sudeste"})

	suite.Require().NoError(err)
	suite.Require().Len(out, 1)
	suite.Equal("b", out[0].ProcedureID)
}

func (suite *ProcedureServiceTestSuite) TestGetProcedureOptions_CollectsCatalogs() {
	ctx := context.Background()
	stored := []domain.Procedure{
		{ProcedureID: "a", HospitalUnit: "H2", ProcedureName: "Exame"},
		{ProcedureID: "b", HospitalUnit: "H1", ProcedureName: "Consulta"},
		{ProcedureID: "c", HospitalUnit: "H1", ProcedureName: "Consulta"},
	}

	suite.mockProcedureRepo.On("FindProcedures", ctx).Return(stored, nil).Once()

	options, err := suite.service.GetProcedureOptions(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.Regions, options.Regions)
	suite.Equal(domain.States, options.States)
	suite.Equal([]string{"H1", "H2"}, options.HospitalUnits)
	suite.Equal([]string{"Consulta", "Exame"}, options.ProcedureNames)
}

func TestProcedureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProcedureServiceTestSuite))
}
