package models

import "time"

// Loan is the persistence shape of a row in the peminjaman table.
type Loan struct {
	LoanID              string
	ArchiveID           string
	NomorSurat          string
	Peminjam            string
	Keperluan           string
	TanggalPinjam       time.Time
	TanggalHarusKembali time.Time
	TanggalPengembalian *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
