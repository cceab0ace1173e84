package services

import (
	portsrepo "github.com/SscSPs/procedure_control_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Procedure = NewProcedureService(repos.ProcedureRepo, repos.UserRepo)
	container.Reporting = NewReportingService(repos.ProcedureRepo)
	container.Export = NewExportService(repos.ProcedureRepo, repos.UserRepo)

	return container
}
