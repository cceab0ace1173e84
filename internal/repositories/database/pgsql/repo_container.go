package pgsql

import (
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProcedureRepo: newPgxProcedureRepository(dbPool),
		UserRepo:      newPgxUserRepository(dbPool),
	}
}
