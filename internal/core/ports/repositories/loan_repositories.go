package repositories

import (
	"context"
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// LoanReader defines read operations for loan records.
type LoanReader interface {
	// FindLoanByID retrieves a single loan, including its archive summary.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// FindLoans retrieves loans matching the filter, newest-created first,
	// each including its archive summary.
	FindLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error)

	// FindOutstandingLoanByNomorSurat retrieves the outstanding loan (no
	// return date) carrying the given letter number, or ErrNotFound.
	FindOutstandingLoanByNomorSurat(ctx context.Context, nomorSurat string) (*domain.Loan, error)

	// CountLoans aggregates loan counts by derived status relative to now.
	CountLoans(ctx context.Context, now time.Time) (*domain.LoanStats, error)
}

// LoanWriter defines write operations for loan records.
type LoanWriter interface {
	// SaveLoan persists a new loan. It returns ErrDuplicate when the letter
	// number collides with another outstanding loan.
	SaveLoan(ctx context.Context, loan domain.Loan) error

	// MarkLoanReturned sets the return date on an outstanding loan.
	MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) error
}

// LoanRepositoryFacade combines all loan repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
