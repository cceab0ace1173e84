package sqlite

import (
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
)

// NewRepositoryProvider opens the snapshot store at path and returns the
// repositories plus the store itself so the caller can close it.
func NewRepositoryProvider(path string) (portsrepo.RepositoryProvider, *Store, error) {
	store, err := NewStore(path)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return portsrepo.RepositoryProvider{
		ProcedureRepo: newSqliteProcedureRepository(store),
		UserRepo:      newSqliteUserRepository(store),
	}, store, nil
}
