package domain

import "time"

// LoanStatus is derived from the return and due dates at read time; it is
// never stored.
type LoanStatus string

const (
	LoanStatusOngoing  LoanStatus = "ongoing"
	LoanStatusReturned LoanStatus = "returned"
	LoanStatusOverdue  LoanStatus = "overdue"
)

// Loan is a borrowing transaction checking one archive out to a named
// borrower until a due date. TanggalPengembalian stays nil while the loan
// is outstanding.
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
	Archive             *ArchiveSummary
}

// Status derives the lifecycle state of the loan relative to now.
func (l Loan) Status(now time.Time) LoanStatus {
	if l.TanggalPengembalian != nil {
		return LoanStatusReturned
	}
	if l.TanggalHarusKembali.Before(now) {
		return LoanStatusOverdue
	}
	return LoanStatusOngoing
}

// LoanFilter narrows loan listing queries.
type LoanFilter struct {
	ArchiveID string
	Peminjam  string
}

// LoanStats holds the derived-status loan counts.
type LoanStats struct {
	Total    int64
	Ongoing  int64
	Returned int64
	Overdue  int64
}
