package pgsql

import (
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories against one
// shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ArchiveRepo: newPgxArchiveRepository(dbPool),
		LoanRepo:    newPgxLoanRepository(dbPool),
		UserRepo:    newPgxUserRepository(dbPool),
	}
}
