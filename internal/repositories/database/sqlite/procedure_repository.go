package sqlite

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	"github.com/SscSPs/procedure_control_app/internal/models"
)

type SqliteProcedureRepository struct {
	store *Store
}

func newSqliteProcedureRepository(store *Store) portsrepo.ProcedureRepository {
	return &SqliteProcedureRepository{store: store}
}

// Ensure SqliteProcedureRepository implements portsrepo.ProcedureRepository
var _ portsrepo.ProcedureRepository = (*SqliteProcedureRepository)(nil)

// Helper to convert domain.Procedure to models.Procedure
func toModelProcedure(d domain.Procedure) models.Procedure {
	return models.Procedure{
		ProcedureID:    d.ProcedureID,
		Date:           d.Date,
		Region:         d.Region,
		State:          d.State,
		HospitalUnit:   d.HospitalUnit,
		PatientName:    d.PatientName,
		ProcedureName:  d.ProcedureName,
		QtyPerformed:   d.QtyPerformed,
		QtyBilled:      d.QtyBilled,
		QtyPaid:        d.QtyPaid,
		ValuePerformed: d.ValuePerformed,
		ValueBilled:    d.ValueBilled,
		ValuePaid:      d.ValuePaid,
		AuditFields: models.AuditFields{
			CreatedAt:      d.CreatedAt,
			CreatedBy:      d.CreatedBy,
			LastModifiedAt: d.LastModifiedAt,
			LastModifiedBy: d.LastModifiedBy,
		},
	}
}

// Helper to convert models.Procedure to domain.Procedure
func toDomainProcedure(m models.Procedure) domain.Procedure {
	return domain.Procedure{
		ProcedureID:    m.ProcedureID,
		Date:           m.Date,
		Region:         m.Region,
		State:          m.State,
		HospitalUnit:   m.HospitalUnit,
		PatientName:    m.PatientName,
		ProcedureName:  m.ProcedureName,
		QtyPerformed:   m.QtyPerformed,
		QtyBilled:      m.QtyBilled,
		QtyPaid:        m.QtyPaid,
		ValuePerformed: m.ValuePerformed,
		ValueBilled:    m.ValueBilled,
		ValuePaid:      m.ValuePaid,
		AuditFields: domain.AuditFields{
			CreatedAt:      m.CreatedAt,
			CreatedBy:      m.CreatedBy,
			LastModifiedAt: m.LastModifiedAt,
			LastModifiedBy: m.LastModifiedBy,
		},
	}
}

func (r *SqliteProcedureRepository) FindProcedures(ctx context.Context) ([]domain.Procedure, error) {
	var out []domain.Procedure
	r.store.view(func() {
		out = make([]domain.Procedure, len(r.store.procedures))
		for i, m := range r.store.procedures {
			out[i] = toDomainProcedure(m)
		}
	})
	return out, nil
}

func (r *SqliteProcedureRepository) FindProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error) {
	var found *domain.Procedure
	r.store.view(func() {
		for i := range r.store.procedures {
			if r.store.procedures[i].ProcedureID == procedureID {
				d := toDomainProcedure(r.store.procedures[i])
				found = &d
				return
			}
		}
	})
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// SaveProcedure upserts a record. New records append, keeping insertion order.
func (r *SqliteProcedureRepository) SaveProcedure(ctx context.Context, procedure domain.Procedure) error {
	m := toModelProcedure(procedure)
	return r.store.update(func() error {
		for i := range r.store.procedures {
			if r.store.procedures[i].ProcedureID == m.ProcedureID {
				r.store.procedures[i] = m
				return nil
			}
		}
		r.store.procedures = append(r.store.procedures, m)
		return nil
	})
}

// DeleteProcedure removes a record. An absent ID is a no-op.
func (r *SqliteProcedureRepository) DeleteProcedure(ctx context.Context, procedureID string) error {
	return r.store.update(func() error {
		for i := range r.store.procedures {
			if r.store.procedures[i].ProcedureID == procedureID {
				r.store.procedures = append(r.store.procedures[:i], r.store.procedures[i+1:]...)
				return nil
			}
		}
		return nil
	})
}
