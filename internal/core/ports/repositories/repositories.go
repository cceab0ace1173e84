package repositories

// RepositoryProvider bundles the repositories a storage backend must supply.
// Both the PostgreSQL and the local SQLite snapshot backends produce one.
type RepositoryProvider struct {
	ProcedureRepo ProcedureRepository
	UserRepo      UserRepository
}
