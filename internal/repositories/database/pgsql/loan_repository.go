package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgUniqueViolation is the Postgres error code for unique constraint
// violations; the partial unique index on peminjaman.nomor_surat is the
// actual guard against concurrent duplicate letter numbers.
const pgUniqueViolation = "23505"

// loanJoinedColumns selects the loan row plus the archive summary fields
// displayed alongside every loan.
const loanJoinedColumns = `p.loan_id, p.archive_id, p.nomor_surat, p.peminjam, p.keperluan,
		p.tanggal_pinjam, p.tanggal_harus_kembali, p.tanggal_pengembalian, p.created_at, p.updated_at,
		a.archive_id, a.judul_berkas, a.nomor_berkas, a.klasifikasi, a.nomor_surat, a.perihal,
		a.tanggal, a.lokasi_simpan`

type PgxLoanRepository struct {
	db *pgxpool.Pool
}

func newPgxLoanRepository(db *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{db: db}
}

var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// Helper to convert models.Loan plus its joined summary to domain.Loan
func toDomainLoan(m models.Loan, summary *domain.ArchiveSummary) domain.Loan {
	return domain.Loan{
		LoanID:              m.LoanID,
		ArchiveID:           m.ArchiveID,
		NomorSurat:          m.NomorSurat,
		Peminjam:            m.Peminjam,
		Keperluan:           m.Keperluan,
		TanggalPinjam:       m.TanggalPinjam,
		TanggalHarusKembali: m.TanggalHarusKembali,
		TanggalPengembalian: m.TanggalPengembalian,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
		Archive:             summary,
	}
}

func scanJoinedLoan(row pgx.Row) (domain.Loan, error) {
	var m models.Loan
	var summary domain.ArchiveSummary
	err := row.Scan(
		&m.LoanID,
		&m.ArchiveID,
		&m.NomorSurat,
		&m.Peminjam,
		&m.Keperluan,
		&m.TanggalPinjam,
		&m.TanggalHarusKembali,
		&m.TanggalPengembalian,
		&m.CreatedAt,
		&m.UpdatedAt,
		&summary.ArchiveID,
		&summary.JudulBerkas,
		&summary.NomorBerkas,
		&summary.Klasifikasi,
		&summary.NomorSurat,
		&summary.Perihal,
		&summary.Tanggal,
		&summary.LokasiSimpan,
	)
	if err != nil {
		return domain.Loan{}, err
	}
	return toDomainLoan(m, &summary), nil
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	query := `
        INSERT INTO peminjaman (loan_id, archive_id, nomor_surat, peminjam, keperluan,
            tanggal_pinjam, tanggal_harus_kembali, tanggal_pengembalian, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		loan.LoanID,
		loan.ArchiveID,
		loan.NomorSurat,
		loan.Peminjam,
		loan.Keperluan,
		loan.TanggalPinjam,
		loan.TanggalHarusKembali,
		loan.TanggalPengembalian,
		loan.CreatedAt,
		loan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("loan letter number %s already in use: %w", loan.NomorSurat, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `
        SELECT ` + loanJoinedColumns + `
        FROM peminjaman p
        JOIN archives a ON a.archive_id = p.archive_id
        WHERE p.loan_id = $1;
    `
	loan, err := scanJoinedLoan(r.db.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	return &loan, nil
}

func (r *PgxLoanRepository) FindLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanJoinedColumns + `
        FROM peminjaman p
        JOIN archives a ON a.archive_id = p.archive_id
        WHERE ($1 = '' OR p.archive_id = $1)
          AND ($2 = '' OR p.peminjam ILIKE '%' || $2 || '%')
        ORDER BY p.created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, filter.ArchiveID, filter.Peminjam)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := []domain.Loan{}
	for rows.Next() {
		loan, err := scanJoinedLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, loan)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", rows.Err())
	}

	return loans, nil
}

func (r *PgxLoanRepository) FindOutstandingLoanByNomorSurat(ctx context.Context, nomorSurat string) (*domain.Loan, error) {
	query := `
        SELECT ` + loanJoinedColumns + `
        FROM peminjaman p
        JOIN archives a ON a.archive_id = p.archive_id
        WHERE p.nomor_surat = $1 AND p.tanggal_pengembalian IS NULL;
    `
	loan, err := scanJoinedLoan(r.db.QueryRow(ctx, query, nomorSurat))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find outstanding loan by nomor surat: %w", err)
	}
	return &loan, nil
}

func (r *PgxLoanRepository) MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) error {
	query := `
        UPDATE peminjaman
        SET tanggal_pengembalian = $1, updated_at = $2
        WHERE loan_id = $3 AND tanggal_pengembalian IS NULL;
    `
	cmdTag, err := r.db.Exec(ctx, query, returnedAt, time.Now(), loanID)
	if err != nil {
		return fmt.Errorf("failed to mark loan returned: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("loan not found or already returned: %w", apperrors.ErrNotFound)
	}
	return nil
}

// countLoansQuery reports ongoing as every outstanding loan; overdue is the
// overlapping subset of those past their due date, not a third bucket.
const countLoansQuery = `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE tanggal_pengembalian IS NULL),
            COUNT(*) FILTER (WHERE tanggal_pengembalian IS NOT NULL),
            COUNT(*) FILTER (WHERE tanggal_pengembalian IS NULL AND tanggal_harus_kembali < $1)
        FROM peminjaman;
    `

func (r *PgxLoanRepository) CountLoans(ctx context.Context, now time.Time) (*domain.LoanStats, error) {
	var stats domain.LoanStats
	err := r.db.QueryRow(ctx, countLoansQuery, now).Scan(&stats.Total, &stats.Ongoing, &stats.Returned, &stats.Overdue)
	if err != nil {
		return nil, fmt.Errorf("failed to count loans: %w", err)
	}
	return &stats, nil
}
