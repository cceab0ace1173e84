package repositories

import (
	"context"

	"github.com/SscSPs/procedure_control_app/internal/core/domain"
)

// ProcedureRepository defines persistence operations for procedure records.
// The application keeps a single canonical in-memory snapshot per request:
// filtering and aggregation happen over the full collection, so there is no
// query-side filtering contract here.
type ProcedureRepository interface {
	// FindProcedures returns the full record collection in insertion order.
	FindProcedures(ctx context.Context) ([]domain.Procedure, error)

	// FindProcedureByID returns one record or apperrors.ErrNotFound.
	FindProcedureByID(ctx context.Context, procedureID string) (*domain.Procedure, error)

	// SaveProcedure upserts a record keyed by its ID.
	SaveProcedure(ctx context.Context, procedure domain.Procedure) error

	// DeleteProcedure removes a record permanently. Deleting an absent ID is
	// a no-op, not an error.
	DeleteProcedure(ctx context.Context, procedureID string) error
}
