package services

import (
	"context"
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
	"github.com/arsipku/arsip_backend/internal/dto"
)

// LoanSvcFacade defines the borrowing lifecycle operations.
type LoanSvcFacade interface {
	// CreateLoan checks an archive out. It fails with ErrNotFound when the
	// archive does not exist and ErrDuplicate when the loan letter number is
	// already carried by an outstanding loan.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)

	// ListLoans retrieves loans matching the filter, newest-created first.
	ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error)

	// ReturnLoan sets the return date on an outstanding loan, completing the
	// Created -> Returned transition.
	ReturnLoan(ctx context.Context, loanID string, returnedAt *time.Time) (*domain.Loan, error)

	// GetLoanStats aggregates loan counts by derived status.
	GetLoanStats(ctx context.Context) (*domain.LoanStats, error)
}
