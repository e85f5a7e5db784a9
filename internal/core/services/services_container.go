package services

import (
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with fully wired
// dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Archive: NewArchiveService(repos.ArchiveRepo),
		Import:  NewImportService(repos.ArchiveRepo),
		Loan:    NewLoanService(repos.LoanRepo, repos.ArchiveRepo),
		User:    NewUserService(repos.UserRepo),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.ArchiveSvcFacade = (*archiveService)(nil)
	_ portssvc.ImportSvcFacade  = (*importService)(nil)
	_ portssvc.LoanSvcFacade    = (*loanService)(nil)
	_ portssvc.UserSvcFacade    = (*userService)(nil)
)
