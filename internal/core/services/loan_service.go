package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/google/uuid"
)

// defaultLoanTerm is applied when a loan is created without a due date.
const defaultLoanTerm = 7 * 24 * time.Hour

type loanService struct {
	loanRepo    portsrepo.LoanRepositoryFacade
	archiveRepo portsrepo.ArchiveRepositoryFacade
}

func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, archiveRepo portsrepo.ArchiveRepositoryFacade) *loanService {
	return &loanService{loanRepo: loanRepo, archiveRepo: archiveRepo}
}

// CreateLoan validates the referenced archive, rejects duplicate letter
// numbers among outstanding loans, defaults the due date and persists the
// loan. The pre-check against the letter number is advisory only; the
// partial unique index in the peminjaman table is the actual guarantee, and
// its violation surfaces as the same ErrDuplicate.
func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	archive, err := s.archiveRepo.FindArchiveByID(ctx, req.ArchiveID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("archive %s: %w", req.ArchiveID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load archive for loan: %w", err)
	}

	// Advisory fast-path for a friendlier error message.
	existing, err := s.loanRepo.FindOutstandingLoanByNomorSurat(ctx, req.NomorSurat)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check loan letter number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("nomor surat peminjaman sudah digunakan: %w", apperrors.ErrDuplicate)
	}

	tanggalPinjam := *req.TanggalPinjam
	tanggalHarusKembali := tanggalPinjam.Add(defaultLoanTerm)
	if req.TanggalHarusKembali != nil {
		tanggalHarusKembali = *req.TanggalHarusKembali
	}

	now := time.Now()
	summary := archive.Summary()
	loan := domain.Loan{
		LoanID:              uuid.NewString(),
		ArchiveID:           archive.ArchiveID,
		NomorSurat:          req.NomorSurat,
		Peminjam:            req.Peminjam,
		Keperluan:           req.Keperluan,
		TanggalPinjam:       tanggalPinjam,
		TanggalHarusKembali: tanggalHarusKembali,
		TanggalPengembalian: req.TanggalPengembalian,
		CreatedAt:           now,
		UpdatedAt:           now,
		Archive:             &summary,
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("nomor surat peminjaman sudah digunakan: %w", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create loan in service: %w", err)
	}
	return &loan, nil
}

func (s *loanService) ListLoans(ctx context.Context, params dto.ListLoansParams) ([]domain.Loan, error) {
	loans, err := s.loanRepo.FindLoans(ctx, domain.LoanFilter{
		ArchiveID: params.ArchiveID,
		Peminjam:  params.Peminjam,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list loans in service: %w", err)
	}
	return loans, nil
}

// ReturnLoan completes the only modeled transition, Created -> Returned.
// Returning an already returned loan fails validation.
func (s *loanService) ReturnLoan(ctx context.Context, loanID string, returnedAt *time.Time) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to load loan for return: %w", err)
	}
	if loan.TanggalPengembalian != nil {
		return nil, fmt.Errorf("peminjaman sudah dikembalikan: %w", apperrors.ErrValidation)
	}

	when := time.Now()
	if returnedAt != nil {
		when = *returnedAt
	}
	if err := s.loanRepo.MarkLoanReturned(ctx, loanID, when); err != nil {
		return nil, fmt.Errorf("failed to mark loan returned in service: %w", err)
	}

	loan.TanggalPengembalian = &when
	loan.UpdatedAt = when
	return loan, nil
}

func (s *loanService) GetLoanStats(ctx context.Context) (*domain.LoanStats, error) {
	stats, err := s.loanRepo.CountLoans(ctx, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get loan stats in service: %w", err)
	}
	return stats, nil
}
