package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/procedure_control_app/internal/apperrors"
	"github.com/SscSPs/procedure_control_app/internal/core/domain"
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	"github.com/SscSPs/procedure_control_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProcedureRepository struct {
	db *pgxpool.Pool
}

func newPgxProcedureRepository(db *pgxpool.Pool) portsrepo.ProcedureRepository {
	return &PgxProcedureRepository{db: db}
}

// Ensure PgxProcedureRepository implements portsrepo.ProcedureRepository
var _ portsrepo.ProcedureRepository = (*PgxProcedureRepository)(nil)

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

const procedureColumns = `
	procedure_id, procedure_date, region, state, hospital_unit,
	patient_name, procedure_name,
	qty_performed, qty_billed, qty_paid,
	value_performed, value_billed, value_paid,
	created_at, created_by, last_modified_at, last_modified_by`

func scanProcedure(row pgx.Row) (models.Procedure, error) {
	var m models.Procedure
	err := row.Scan(
		&m.ProcedureID,
		&m.Date,
		&m.Region,
		&m.State,
		&m.HospitalUnit,
		&m.PatientName,
		&m.ProcedureName,
		&m.QtyPerformed,
		&m.QtyBilled,
		&m.QtyPaid,
		&m.ValuePerformed,
		&m.ValueBilled,
		&m.ValuePaid,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastModifiedAt,
		&m.LastModifiedBy,
	)
	return m, err
}

// FindProcedures returns the full collection in insertion order.
func (r *PgxProcedureRepository) FindProcedures(ctx context.Context) ([]domain.Procedure, error) {
	query := `
        SELECT ` + procedureColumns + `
        FROM procedures
        ORDER BY created_at, procedure_id;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query procedures: %w", err)
	}
	defer rows.Close()

	procedures := []domain.Procedure{}
	for rows.Next() {
		m, err := scanProcedure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan procedure row: %w", err)
		}
		procedures = append(procedures, toDomainProcedure(m))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating procedure rows: %w", rows.Err())
	}
	return procedures, nil
}

func (r *PgxProcedureRepository) FindProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error) {
	query := `
		SELECT ` + procedureColumns + `
		FROM procedures
		WHERE procedure_id = $1;
	`
	m, err := scanProcedure(r.db.QueryRow(ctx, query, procedureID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find procedure by ID %s: %w", procedureID, err)
	}

	d := toDomainProcedure(m)
	return &d, nil
}

// SaveProcedure upserts a record keyed by its ID. The creation audit columns
// keep their inserted values on conflict.
func (r *PgxProcedureRepository) SaveProcedure(ctx context.Context, procedure domain.Procedure) error {
	m := toModelProcedure(procedure)
	query := `
        INSERT INTO procedures (
            procedure_id, procedure_date, region, state, hospital_unit,
            patient_name, procedure_name,
            qty_performed, qty_billed, qty_paid,
            value_performed, value_billed, value_paid,
            created_at, created_by, last_modified_at, last_modified_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        ON CONFLICT (procedure_id) DO UPDATE SET
            procedure_date = EXCLUDED.procedure_date,
            region = EXCLUDED.region,
            state = EXCLUDED.state,
            hospital_unit = EXCLUDED.hospital_unit,
            patient_name = EXCLUDED.patient_name,
            procedure_name = EXCLUDED.procedure_name,
            qty_performed = EXCLUDED.qty_performed,
            qty_billed = EXCLUDED.qty_billed,
            qty_paid = EXCLUDED.qty_paid,
            value_performed = EXCLUDED.value_performed,
            value_billed = EXCLUDED.value_billed,
            value_paid = EXCLUDED.value_paid,
            last_modified_at = EXCLUDED.last_modified_at,
            last_modified_by = EXCLUDED.last_modified_by;
    `
	_, err := r.db.Exec(ctx, query,
		m.ProcedureID,
		m.Date,
		m.Region,
		m.State,
		m.HospitalUnit,
		m.PatientName,
		m.ProcedureName,
		m.QtyPerformed,
		m.QtyBilled,
		m.QtyPaid,
		m.ValuePerformed,
		m.ValueBilled,
		m.ValuePaid,
		m.CreatedAt,
		m.CreatedBy,
		m.LastModifiedAt,
		m.LastModifiedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save procedure: %w", err)
	}
	return nil
}

// DeleteProcedure removes a record. Zero affected rows is not an error.
func (r *PgxProcedureRepository) DeleteProcedure(ctx context.Context, procedureID string) error {
	query := `DELETE FROM procedures WHERE procedure_id = $1;`
	_, err := r.db.Exec(ctx, query, procedureID)
	if err != nil {
		return fmt.Errorf("failed to delete procedure %s: %w", procedureID, err)
	}
	return nil
}
