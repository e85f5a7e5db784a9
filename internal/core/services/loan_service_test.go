package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	"github.com/arsipku/arsip_backend/internal/core/services"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) FindLoans(ctx context.Context, filter domain.LoanFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, filter)
	var loans []domain.Loan
	if args.Get(0) != nil {
		loans = args.Get(0).([]domain.Loan)
	}
	return loans, args.Error(1)
}

func (m *MockLoanRepository) FindOutstandingLoanByNomorSurat(ctx context.Context, nomorSurat string) (*domain.Loan, error) {
	args := m.Called(ctx, nomorSurat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) CountLoans(ctx context.Context, now time.Time) (*domain.LoanStats, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanStats), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) MarkLoanReturned(ctx context.Context, loanID string, returnedAt time.Time) error {
	args := m.Called(ctx, loanID, returnedAt)
	return args.Error(0)
}

// --- Test Suite ---
type LoanServiceTestSuite struct {
	suite.Suite
	mockLoanRepo    *MockLoanRepository
	mockArchiveRepo *MockArchiveRepository
	archive         *domain.Archive
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockArchiveRepo = new(MockArchiveRepository)

	judul := "Berkas Uji"
	suite.archive = &domain.Archive{
		ArchiveID:   uuid.NewString(),
		KodeUnit:    "UM",
		NomorSurat:  "001/ARSIP/2025",
		Perihal:     "Perihal uji",
		JudulBerkas: &judul,
		Status:      domain.ArchiveStatusActive,
	}
}

func (suite *LoanServiceTestSuite) createReq(tanggalPinjam time.Time) dto.CreateLoanRequest {
	return dto.CreateLoanRequest{
		ArchiveID:     suite.archive.ArchiveID,
		NomorSurat:    "PJM/001/2025",
		Peminjam:      "Budi",
		Keperluan:     "Audit internal",
		TanggalPinjam: &tanggalPinjam,
	}
}

func (suite *LoanServiceTestSuite) TestCreateLoan_SuccessDefaultsDueDate() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)
	tanggalPinjam := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(suite.archive, nil)
	suite.mockLoanRepo.On("FindOutstandingLoanByNomorSurat", ctx, "PJM/001/2025").Return(nil, apperrors.ErrNotFound)
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan")).Return(nil)

	loan, err := svc.CreateLoan(ctx, suite.createReq(tanggalPinjam))

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.Equal(time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), loan.TanggalHarusKembali)
	suite.Nil(loan.TanggalPengembalian)
	suite.Require().NotNil(loan.Archive)
	suite.Equal(suite.archive.ArchiveID, loan.Archive.ArchiveID)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_ExplicitDueDateWins() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)
	tanggalPinjam := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	due := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(suite.archive, nil)
	suite.mockLoanRepo.On("FindOutstandingLoanByNomorSurat", ctx, "PJM/001/2025").Return(nil, apperrors.ErrNotFound)
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan")).Return(nil)

	req := suite.createReq(tanggalPinjam)
	req.TanggalHarusKembali = &due
	loan, err := svc.CreateLoan(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(due, loan.TanggalHarusKembali)
}

func (suite *LoanServiceTestSuite) TestCreateLoan_AlreadyReturnedRecord() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)
	tanggalPinjam := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	returnedAt := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(suite.archive, nil)
	suite.mockLoanRepo.On("FindOutstandingLoanByNomorSurat", ctx, "PJM/001/2025").Return(nil, apperrors.ErrNotFound)

	var saved domain.Loan
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Loan) }).
		Return(nil)

	req := suite.createReq(tanggalPinjam)
	req.TanggalPengembalian = &returnedAt
	loan, err := svc.CreateLoan(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(saved.TanggalPengembalian)
	suite.True(saved.TanggalPengembalian.Equal(returnedAt))
	suite.Equal(domain.LoanStatusReturned, loan.Status(time.Now()))
}

func (suite *LoanServiceTestSuite) TestCreateLoan_ArchiveMissing() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)

	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(nil, apperrors.ErrNotFound)

	loan, err := svc.CreateLoan(ctx, suite.createReq(time.Now()))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestCreateLoan_OutstandingLetterNumberConflict() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)

	existing := &domain.Loan{LoanID: uuid.NewString(), NomorSurat: "PJM/001/2025"}
	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(suite.archive, nil)
	suite.mockLoanRepo.On("FindOutstandingLoanByNomorSurat", ctx, "PJM/001/2025").Return(existing, nil)

	loan, err := svc.CreateLoan(ctx, suite.createReq(time.Now()))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), "nomor surat peminjaman sudah digunakan")
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestCreateLoan_IndexViolationSurfacesAsDuplicate() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)

	suite.mockArchiveRepo.On("FindArchiveByID", ctx, suite.archive.ArchiveID).Return(suite.archive, nil)
	suite.mockLoanRepo.On("FindOutstandingLoanByNomorSurat", ctx, "PJM/001/2025").Return(nil, apperrors.ErrNotFound)
	suite.mockLoanRepo.On("SaveLoan", ctx, mock.AnythingOfType("domain.Loan")).Return(apperrors.ErrDuplicate)

	loan, err := svc.CreateLoan(ctx, suite.createReq(time.Now()))

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *LoanServiceTestSuite) TestReturnLoan_Success() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)
	loanID := uuid.NewString()

	outstanding := &domain.Loan{
		LoanID:              loanID,
		NomorSurat:          "PJM/001/2025",
		TanggalPinjam:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		TanggalHarusKembali: time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
	}
	returnedAt := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(outstanding, nil)
	suite.mockLoanRepo.On("MarkLoanReturned", ctx, loanID, returnedAt).Return(nil)

	loan, err := svc.ReturnLoan(ctx, loanID, &returnedAt)

	suite.Require().NoError(err)
	suite.Require().NotNil(loan.TanggalPengembalian)
	suite.True(loan.TanggalPengembalian.Equal(returnedAt))
	suite.Equal(domain.LoanStatusReturned, loan.Status(time.Now()))
}

func (suite *LoanServiceTestSuite) TestReturnLoan_AlreadyReturned() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)
	loanID := uuid.NewString()

	already := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	returned := &domain.Loan{LoanID: loanID, TanggalPengembalian: &already}

	suite.mockLoanRepo.On("FindLoanByID", ctx, loanID).Return(returned, nil)

	loan, err := svc.ReturnLoan(ctx, loanID, nil)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLoanRepo.AssertNotCalled(suite.T(), "MarkLoanReturned", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestListLoans_PassesFilter() {
	ctx := context.Background()
	svc := services.NewLoanService(suite.mockLoanRepo, suite.mockArchiveRepo)

	want := domain.LoanFilter{ArchiveID: "abc", Peminjam: "Budi"}
	suite.mockLoanRepo.On("FindLoans", ctx, want).Return([]domain.Loan{{LoanID: "l1"}}, nil)

	loans, err := svc.ListLoans(ctx, dto.ListLoansParams{ArchiveID: "abc", Peminjam: "Budi"})

	suite.Require().NoError(err)
	suite.Len(loans, 1)
	suite.mockLoanRepo.AssertExpectations(suite.T())
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
