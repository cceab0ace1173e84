package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// procedureService implements the ProcedureSvcFacade interface
type procedureService struct {
	BaseService
	procedureRepo portsrepo.ProcedureRepository
	userRepo      portsrepo.UserRepository
	now           func() time.Time
}

// NewProcedureService creates a new procedure service with the provided dependencies
func NewProcedureService(procedureRepo portsrepo.ProcedureRepository, userRepo portsrepo.UserRepository) portssvc.ProcedureSvcFacade {
	return &procedureService{
		procedureRepo: procedureRepo,
		userRepo:      userRepo,
		now:           time.Now,
	}
}

// Ensure procedureService implements the ProcedureSvcFacade interface
var _ portssvc.ProcedureSvcFacade = (*procedureService)(nil)

// ListProcedures retrieves the records matching the criteria, in insertion order.
func (s *procedureService) ListProcedures(ctx context.Context, criteria domain.FilterCriteria) ([]domain.Procedure, error) {
	procedures, err := s.procedureRepo.FindProcedures(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list procedures")
		return nil, err
	}
	return criteria.Apply(procedures), nil
}

// GetProcedureByID retrieves a record by ID.
func (s *procedureService) GetProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error) {
	procedure, err := s.procedureRepo.FindProcedureByID(ctx, procedureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find procedure by ID",
				slog.String("procedure_id", procedureID))
		}
		return nil, err
	}
	return procedure, nil
}

// GetProcedureOptions derives the filter dropdown catalogs from the stored records.
func (s *procedureService) GetProcedureOptions(ctx context.Context) (*domain.FilterOptions, error) {
	procedures, err := s.procedureRepo.FindProcedures(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load procedures for options")
		return nil, err
	}
	options := domain.CollectFilterOptions(procedures)
	return &options, nil
}

// CreateProcedure validates and stores a new record. The acting account's
// display name is written into the audit fields.
func (s *procedureService) CreateProcedure(ctx context.Context, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error) {
	actor, err := s.resolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	if fieldErrs := domain.ValidateProcedureInput(req.ToProcedureInput(), s.now()); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError(fieldErrs.ByField())
	}

	if (req.Billed || req.Paid) && !actor.Role.CanEditBillingStatus() {
		return nil, fmt.Errorf("role %q may not set billing status: %w", actor.Role, apperrors.ErrForbidden)
	}

	now := s.now()
	procedure := domain.Procedure{
		ProcedureID:   uuid.NewString(),
		Date:          req.Date,
		Region:        req.Region,
		State:         req.State,
		HospitalUnit:  req.HospitalUnit,
		PatientName:   req.PatientName,
		ProcedureName: req.ProcedureName,
		AuditFields: domain.AuditFields{
			CreatedAt:      now,
			CreatedBy:      actor.Name,
			LastModifiedAt: now,
			LastModifiedBy: actor.Name,
		},
	}
	applyStageTriples(&procedure, req)

	if err := s.procedureRepo.SaveProcedure(ctx, procedure); err != nil {
		s.LogError(ctx, err, "Failed to save procedure",
			slog.String("procedure_id", procedure.ProcedureID))
		return nil, err
	}

	s.LogInfo(ctx, "Procedure created successfully",
		slog.String("procedure_id", procedure.ProcedureID),
		slog.String("actor_id", actorUserID))
	return &procedure, nil
}

// UpdateProcedure validates and overwrites an existing record. Creation audit
// fields survive the update untouched.
func (s *procedureService) UpdateProcedure(ctx context.Context, procedureID string, req dto.SaveProcedureRequest, actorUserID string) (*domain.Procedure, error) {
	actor, err := s.resolveActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	existing, err := s.procedureRepo.FindProcedureByID(ctx, procedureID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find procedure for update",
				slog.String("procedure_id", procedureID))
		}
		return nil, err
	}

	if fieldErrs := domain.ValidateProcedureInput(req.ToProcedureInput(), s.now()); len(fieldErrs) > 0 {
		return nil, apperrors.NewValidationError(fieldErrs.ByField())
	}

	if !actor.Role.CanEditBillingStatus() &&
		(req.Billed != existing.Billed() || req.Paid != existing.Paid()) {
		return nil, fmt.Errorf("role %q may not change billing status: %w", actor.Role, apperrors.ErrForbidden)
	}

	updated := domain.Procedure{
		ProcedureID:   existing.ProcedureID,
		Date:          req.Date,
		Region:        req.Region,
		State:         req.State,
		HospitalUnit:  req.HospitalUnit,
		PatientName:   req.PatientName,
		ProcedureName: req.ProcedureName,
		AuditFields: domain.AuditFields{
			CreatedAt:      existing.CreatedAt,
			CreatedBy:      existing.CreatedBy,
			LastModifiedAt: s.now(),
			LastModifiedBy: actor.Name,
		},
	}
	applyStageTriples(&updated, req)

	if err := s.procedureRepo.SaveProcedure(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to save procedure",
			slog.String("procedure_id", procedureID))
		return nil, err
	}

	s.LogInfo(ctx, "Procedure updated successfully",
		slog.String("procedure_id", procedureID),
		slog.String("actor_id", actorUserID))
	return &updated, nil
}

// DeleteProcedure removes a record permanently. An absent ID is a no-op.
func (s *procedureService) DeleteProcedure(ctx context.Context, procedureID string, actorUserID string) error {
	if err := s.procedureRepo.DeleteProcedure(ctx, procedureID); err != nil {
		s.LogError(ctx, err, "Failed to delete procedure",
			slog.String("procedure_id", procedureID))
		return err
	}

	s.LogInfo(ctx, "Procedure deleted",
		slog.String("procedure_id", procedureID),
		slog.String("actor_id", actorUserID))
	return nil
}

func (s *procedureService) resolveActor(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.userRepo.FindUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// The token outlived its account.
			return nil, fmt.Errorf("acting account no longer exists: %w", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to resolve acting account",
			slog.String("actor_id", actorUserID))
		return nil, err
	}
	return actor, nil
}

// applyStageTriples derives the quantity and value triples from the form's
// performed value and the billed/paid flags. A record always describes a
// single occurrence, so the performed quantity is fixed at one and the
// billed/paid pairs either mirror the performed pair or stay zero.
func applyStageTriples(p *domain.Procedure, req dto.SaveProcedureRequest) {
	p.QtyPerformed = 1
	p.ValuePerformed = req.ValuePerformed
	if req.Billed {
		p.QtyBilled = 1
		p.ValueBilled = req.ValuePerformed
	} else {
		p.QtyBilled = 0
		p.ValueBilled = decimal.Zero
	}
	if req.Paid {
		p.QtyPaid = 1
		p.ValuePaid = req.ValuePerformed
	} else {
		p.QtyPaid = 0
		p.ValuePaid = decimal.Zero
	}
}
