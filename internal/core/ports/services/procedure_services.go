package services

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	"github.com/SscSPs/procedure_control_app/internal/dto"
)

// ProcedureReaderSvc defines read operations for procedure records
type ProcedureReaderSvc interface {
	// ListProcedures retrieves the records matching the given criteria,
	// in insertion order.
	ListProcedures(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Procedure, error)

	// GetProcedureByID retrieves a record by ID.
	GetProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error)

	// GetProcedureOptions derives the filter dropdown catalogs from the
	// stored records.
	GetProcedureOptions(ctx context.Context) (*domain.FilterOptions, error)
}

// ProcedureWriterSvc defines write operations for procedure records
type ProcedureWriterSvc interface {
	// CreateProcedure validates and stores a new record.
	CreateProcedure(ctx context.Context, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error)

	// UpdateProcedure validates and overwrites an existing record.
	UpdateProcedure(ctx context.Context, procedureID string, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error)

	// DeleteProcedure removes a record permanently. Deleting an absent ID
	// is a no-op.
	DeleteProcedure(ctx context.Context, procedureID string, actorUserID string) error
}

// ProcedureSvcFacade combines all procedure-related service interfaces
type ProcedureSvcFacade interface {
	ProcedureReaderSvc
	ProcedureWriterSvc
}
