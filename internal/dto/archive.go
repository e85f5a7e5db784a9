package dto

import (
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// CreateArchiveRequest carries the fields accepted when registering a new
// archive. KodeUnit, NomorSurat and Perihal are the only mandatory columns.
type CreateArchiveRequest struct {
	KodeUnit            string     `json:"kodeUnit" binding:"required"`
	Indeks              *string    `json:"indeks"`
	NomorBerkas         *string    `json:"nomorBerkas"`
	NomorIsiBerkas      *string    `json:"nomorIsiBerkas"`
	JudulBerkas         *string    `json:"judulBerkas"`
	JenisNaskahDinas    *string    `json:"jenisNaskahDinas"`
	Klasifikasi         *string    `json:"klasifikasi"`
	NomorSurat          string     `json:"nomorSurat" binding:"required"`
	Tanggal             *time.Time `json:"tanggal"`
	Perihal             string     `json:"perihal" binding:"required"`
	Tahun               *int       `json:"tahun"`
	TingkatPerkembangan *string    `json:"tingkatPerkembangan"`
	Kondisi             *string    `json:"kondisi"`
	LokasiSimpan        *string    `json:"lokasiSimpan"`
	RetensiAktif        *string    `json:"retensiAktif"`
	Keterangan          *string    `json:"keterangan"`
	EntryDate           *time.Time `json:"entryDate"`
	RetentionYears      *int       `json:"retentionYears"`
	Status              string     `json:"status" binding:"omitempty,archivestatus"`
}

// UpdateArchiveRequest uses pointers throughout so omitted fields are
// distinguishable from zero values.
type UpdateArchiveRequest struct {
	KodeUnit            *string    `json:"kodeUnit"`
	Indeks              *string    `json:"indeks"`
	NomorBerkas         *string    `json:"nomorBerkas"`
	NomorIsiBerkas      *string    `json:"nomorIsiBerkas"`
	JudulBerkas         *string    `json:"judulBerkas"`
	JenisNaskahDinas    *string    `json:"jenisNaskahDinas"`
	Klasifikasi         *string    `json:"klasifikasi"`
	NomorSurat          *string    `json:"nomorSurat"`
	Tanggal             *time.Time `json:"tanggal"`
	Perihal             *string    `json:"perihal"`
	Tahun               *int       `json:"tahun"`
	TingkatPerkembangan *string    `json:"tingkatPerkembangan"`
	Kondisi             *string    `json:"kondisi"`
	LokasiSimpan        *string    `json:"lokasiSimpan"`
	RetensiAktif        *string    `json:"retensiAktif"`
	Keterangan          *string    `json:"keterangan"`
	RetentionYears      *int       `json:"retentionYears"`
	Status              *string    `json:"status"`
}

// ListArchivesParams defines the bindable query parameters for listing
// archives. filter[<col>] parameters are collected separately because gin
// form binding cannot express the bracketed keys.
type ListArchivesParams struct {
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=10"`
	Search  string `form:"search"`
	Status  string `form:"status"`
	Sort    string `form:"sort,default=entryDate"`
	Order   string `form:"order,default=desc"`
	Filters map[string]string
}

// ArchiveResponse is the wire shape of a single archive record.
type ArchiveResponse struct {
	ID                  string     `json:"id"`
	KodeUnit            string     `json:"kodeUnit"`
	Indeks              *string    `json:"indeks"`
	NomorBerkas         *string    `json:"nomorBerkas"`
	NomorIsiBerkas      *string    `json:"nomorIsiBerkas"`
	JudulBerkas         *string    `json:"judulBerkas"`
	JenisNaskahDinas    *string    `json:"jenisNaskahDinas"`
	Klasifikasi         *string    `json:"klasifikasi"`
	NomorSurat          string     `json:"nomorSurat"`
	Tanggal             *time.Time `json:"tanggal"`
	Perihal             string     `json:"perihal"`
	Tahun               *int       `json:"tahun"`
	TingkatPerkembangan *string    `json:"tingkatPerkembangan"`
	Kondisi             *string    `json:"kondisi"`
	LokasiSimpan        *string    `json:"lokasiSimpan"`
	RetensiAktif        *string    `json:"retensiAktif"`
	Keterangan          *string    `json:"keterangan"`
	EntryDate           time.Time  `json:"entryDate"`
	RetentionYears      int        `json:"retentionYears"`
	Status              string     `json:"status"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}

// Pagination describes the page slice returned by list endpoints.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination computes the pagination block for a filtered total count.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// ListArchivesResponse wraps a page of archives.
type ListArchivesResponse struct {
	Data       []ArchiveResponse `json:"data"`
	Pagination Pagination        `json:"pagination"`
}

// ArchiveStatsResponse carries the per-status record counts.
type ArchiveStatsResponse struct {
	TotalCount    int64 `json:"totalCount"`
	ActiveCount   int64 `json:"activeCount"`
	InactiveCount int64 `json:"inactiveCount"`
	DisposeCount  int64 `json:"disposeCount"`
}

// ToArchiveResponse converts a domain archive to its wire shape.
func ToArchiveResponse(a *domain.Archive) ArchiveResponse {
	return ArchiveResponse{
		ID:                  a.ArchiveID,
		KodeUnit:            a.KodeUnit,
		Indeks:              a.Indeks,
		NomorBerkas:         a.NomorBerkas,
		NomorIsiBerkas:      a.NomorIsiBerkas,
		JudulBerkas:         a.JudulBerkas,
		JenisNaskahDinas:    a.JenisNaskahDinas,
		Klasifikasi:         a.Klasifikasi,
		NomorSurat:          a.NomorSurat,
		Tanggal:             a.Tanggal,
		Perihal:             a.Perihal,
		Tahun:               a.Tahun,
		TingkatPerkembangan: a.TingkatPerkembangan,
		Kondisi:             a.Kondisi,
		LokasiSimpan:        a.LokasiSimpan,
		RetensiAktif:        a.RetensiAktif,
		Keterangan:          a.Keterangan,
		EntryDate:           a.EntryDate,
		RetentionYears:      a.RetentionYears,
		Status:              string(a.Status),
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
	}
}

// ToListArchivesResponse converts a page slice plus totals to the list wire shape.
func ToListArchivesResponse(archives []domain.Archive, page, limit int, total int64) ListArchivesResponse {
	data := make([]ArchiveResponse, len(archives))
	for i := range archives {
		data[i] = ToArchiveResponse(&archives[i])
	}
	return ListArchivesResponse{
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	}
}

// ToArchiveStatsResponse converts domain stats to the wire shape.
func ToArchiveStatsResponse(s *domain.ArchiveStats) ArchiveStatsResponse {
	return ArchiveStatsResponse{
		TotalCount:    s.Total,
		ActiveCount:   s.Active,
		InactiveCount: s.Inactive,
		DisposeCount:  s.Dispose,
	}
}
