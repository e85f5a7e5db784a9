package domain

import "time"

// ArchiveStatus is the retention status of a physical archive record.
type ArchiveStatus string

const (
	ArchiveStatusActive          ArchiveStatus = "ACTIVE"
	ArchiveStatusInactive        ArchiveStatus = "INACTIVE"
	ArchiveStatusDisposeEligible ArchiveStatus = "DISPOSE_ELIGIBLE"
)

// IsValid reports whether s is one of the known archive statuses.
func (s ArchiveStatus) IsValid() bool {
	switch s {
	case ArchiveStatusActive, ArchiveStatusInactive, ArchiveStatusDisposeEligible:
		return true
	}
	return false
}

// Archive is a tracked physical document record with its retention metadata.
// KodeUnit, NomorSurat and Perihal are mandatory; every other descriptive
// field is optional and nil when absent.
type Archive struct {
	ArchiveID           string
	KodeUnit            string
	Indeks              *string
	NomorBerkas         *string
	NomorIsiBerkas      *string
	JudulBerkas         *string
	JenisNaskahDinas    *string
	Klasifikasi         *string
	NomorSurat          string
	Tanggal             *time.Time
	Perihal             string
	Tahun               *int
	TingkatPerkembangan *string
	Kondisi             *string
	LokasiSimpan        *string
	RetensiAktif        *string
	Keterangan          *string
	EntryDate           time.Time
	RetentionYears      int
	Status              ArchiveStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ArchiveSummary is the subset of archive fields joined onto loan records
// for display purposes.
type ArchiveSummary struct {
	ArchiveID    string
	JudulBerkas  *string
	NomorBerkas  *string
	Klasifikasi  *string
	NomorSurat   string
	Perihal      string
	Tanggal      *time.Time
	LokasiSimpan *string
}

// Summary extracts the loan-facing view of an archive.
func (a Archive) Summary() ArchiveSummary {
	return ArchiveSummary{
		ArchiveID:    a.ArchiveID,
		JudulBerkas:  a.JudulBerkas,
		NomorBerkas:  a.NomorBerkas,
		Klasifikasi:  a.Klasifikasi,
		NomorSurat:   a.NomorSurat,
		Perihal:      a.Perihal,
		Tanggal:      a.Tanggal,
		LokasiSimpan: a.LokasiSimpan,
	}
}

// ArchiveFilter narrows listing queries. ColumnFilters keys outside the
// repository allow-list are ignored, not applied.
type ArchiveFilter struct {
	Search        string
	Status        string
	ColumnFilters map[string]string
	SortBy        string
	SortOrder     string
	Limit         int
	Offset        int
}

// ArchiveStats holds the per-status record counts.
type ArchiveStats struct {
	Total    int64
	Active   int64
	Inactive int64
	Dispose  int64
}
