package models

import "time"

// Archive is the persistence shape of an archive row in the archives table.
// Optional descriptive columns are nullable and therefore pointers.
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
	Status              string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
