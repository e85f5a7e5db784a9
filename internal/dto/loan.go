package dto

import (
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// CreateLoanRequest carries the fields required to check an archive out.
// TanggalHarusKembali may be omitted; the service defaults it to seven days
// after TanggalPinjam. A TanggalPengembalian may be supplied to record a
// loan that was already returned.
type CreateLoanRequest struct {
	ArchiveID           string     `json:"archiveId" binding:"required"`
	NomorSurat          string     `json:"nomorSurat" binding:"required"`
	Peminjam            string     `json:"peminjam" binding:"required"`
	Keperluan           string     `json:"keperluan" binding:"required"`
	TanggalPinjam       *time.Time `json:"tanggalPinjam" binding:"required"`
	TanggalHarusKembali *time.Time `json:"tanggalHarusKembali"`
	TanggalPengembalian *time.Time `json:"tanggalPengembalian"`
}

// ReturnLoanRequest optionally overrides the return timestamp.
type ReturnLoanRequest struct {
	TanggalPengembalian *time.Time `json:"tanggalPengembalian"`
}

// ListLoansParams defines the bindable query parameters for listing loans.
type ListLoansParams struct {
	ArchiveID string `form:"archiveId"`
	Peminjam  string `form:"peminjam"`
}

// LoanArchiveResponse is the joined archive summary attached to loan responses.
type LoanArchiveResponse struct {
	ID           string     `json:"id"`
	JudulBerkas  *string    `json:"judulBerkas"`
	NomorBerkas  *string    `json:"nomorBerkas"`
	Klasifikasi  *string    `json:"klasifikasi"`
	NomorSurat   string     `json:"nomorSurat"`
	Perihal      string     `json:"perihal"`
	Tanggal      *time.Time `json:"tanggal"`
	LokasiSimpan *string    `json:"lokasiSimpan"`
}

// LoanResponse is the wire shape of a single loan. Status is derived from
// the date fields at mapping time and never persisted.
type LoanResponse struct {
	ID                  string               `json:"id"`
	ArchiveID           string               `json:"archiveId"`
	NomorSurat          string               `json:"nomorSurat"`
	Peminjam            string               `json:"peminjam"`
	Keperluan           string               `json:"keperluan"`
	TanggalPinjam       time.Time            `json:"tanggalPinjam"`
	TanggalHarusKembali time.Time            `json:"tanggalHarusKembali"`
	TanggalPengembalian *time.Time           `json:"tanggalPengembalian"`
	Status              string               `json:"status"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
	Archive             *LoanArchiveResponse `json:"archive"`
}

// ListLoansResponse wraps the full loan listing.
type ListLoansResponse struct {
	Success bool           `json:"success"`
	Data    []LoanResponse `json:"data"`
	Total   int            `json:"total"`
}

// CreateLoanResponse wraps a freshly created loan.
type CreateLoanResponse struct {
	Success bool         `json:"success"`
	Data    LoanResponse `json:"data"`
	Message string       `json:"message"`
}

// LoanStatsResponse carries the derived-status loan counts.
type LoanStatsResponse struct {
	TotalCount    int64 `json:"totalCount"`
	OngoingCount  int64 `json:"ongoingCount"`
	ReturnedCount int64 `json:"returnedCount"`
	OverdueCount  int64 `json:"overdueCount"`
}

// ToLoanResponse converts a domain loan to its wire shape, deriving the
// lifecycle status relative to now.
func ToLoanResponse(l *domain.Loan, now time.Time) LoanResponse {
	resp := LoanResponse{
		ID:                  l.LoanID,
		ArchiveID:           l.ArchiveID,
		NomorSurat:          l.NomorSurat,
		Peminjam:            l.Peminjam,
		Keperluan:           l.Keperluan,
		TanggalPinjam:       l.TanggalPinjam,
		TanggalHarusKembali: l.TanggalHarusKembali,
		TanggalPengembalian: l.TanggalPengembalian,
		Status:              string(l.Status(now)),
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
	if l.Archive != nil {
		resp.Archive = &LoanArchiveResponse{
			ID:           l.Archive.ArchiveID,
			JudulBerkas:  l.Archive.JudulBerkas,
			NomorBerkas:  l.Archive.NomorBerkas,
			Klasifikasi:  l.Archive.Klasifikasi,
			NomorSurat:   l.Archive.NomorSurat,
			Perihal:      l.Archive.Perihal,
			Tanggal:      l.Archive.Tanggal,
			LokasiSimpan: l.Archive.LokasiSimpan,
		}
	}
	return resp
}

// ToListLoansResponse converts a slice of domain loans to the list wire shape.
func ToListLoansResponse(loans []domain.Loan, now time.Time) ListLoansResponse {
	data := make([]LoanResponse, len(loans))
	for i := range loans {
		data[i] = ToLoanResponse(&loans[i], now)
	}
	return ListLoansResponse{Success: true, Data: data, Total: len(data)}
}

// ToLoanStatsResponse converts domain stats to the wire shape.
func ToLoanStatsResponse(s *domain.LoanStats) LoanStatsResponse {
	return LoanStatsResponse{
		TotalCount:    s.Total,
		OngoingCount:  s.Ongoing,
		ReturnedCount: s.Returned,
		OverdueCount:  s.Overdue,
	}
}
