package services_test

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProcedureRepository ---
type MockProcedureRepository struct {
	mock.Mock
	FindProceduresFn func(ctx context.Context) ([]domain.Procedure, error)
}

func (m *MockProcedureRepository) FindProcedures(ctx context.Context) ([]domain.Procedure, error) {
	if m.FindProceduresFn != nil {
		return m.FindProceduresFn(ctx)
	}
	args := m.Called(ctx)
	var procedures []domain.Procedure
	if args.Get(0) != nil {
		procedures = args.Get(0).([]domain.Procedure)
	}
	return procedures, args.Error(1)
}

func (m *MockProcedureRepository) FindProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error) {
	args := m.Called(ctx, procedureID)
	var procedure *domain.Procedure
	if args.Get(0) != nil {
		procedure = args.Get(0).(*domain.Procedure)
	}
	return procedure, args.Error(1)
}

func (m *MockProcedureRepository) SaveProcedure(ctx context.Context, procedure domain.Procedure) error {
	args := m.Called(ctx, procedure)
	return args.Error(0)
}

func (m *MockProcedureRepository) DeleteProcedure(ctx context.Context, procedureID string) error {
	args := m.Called(ctx, procedureID)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
