package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/utils"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// headerKodeUnit anchors header-row detection: the first row of a sheet
// containing this label (case-insensitive) is taken as the header.
const headerKodeUnit = "KODE UNIT"

// maxReportedErrors caps the error list in the import response; the
// success/failure counters still reflect the true totals.
const maxReportedErrors = 10

// importHeaderOrder is the column order of the import/export template.
var importHeaderOrder = []string{
	"KODE UNIT",
	"INDEKS",
	"NOMOR BERKAS",
	"JUDUL BERKAS",
	"NOMOR ISI BERKAS",
	"JENIS NASKAH DINAS",
	"KLASIFIKASI",
	"NOMOR SURAT",
	"TANGGAL",
	"PERIHAL",
	"TAHUN",
	"TINGKAT PERKEMBANGAN",
	"KONDISI",
	"LOKASI SIMPAN",
	"RETENSI AKTIF",
	"KETERANGAN",
	"RETENTION YEARS",
	"STATUS",
}

// statusLabels recognizes both the canonical tokens and the localized
// spreadsheet labels.
var statusLabels = map[string]domain.ArchiveStatus{
	"ACTIVE":           domain.ArchiveStatusActive,
	"INACTIVE":         domain.ArchiveStatusInactive,
	"DISPOSE_ELIGIBLE": domain.ArchiveStatusDisposeEligible,
	"Aktif":            domain.ArchiveStatusActive,
	"Tidak Aktif":      domain.ArchiveStatusInactive,
	"Siap Musnah":      domain.ArchiveStatusDisposeEligible,
}

type importService struct {
	archiveRepo portsrepo.ArchiveRepositoryFacade
}

func NewImportService(archiveRepo portsrepo.ArchiveRepositoryFacade) *importService {
	return &importService{archiveRepo: archiveRepo}
}

// ImportArchives processes every data row after the detected header row of
// every sheet. Rows are handled strictly sequentially; each row is its own
// independent write, so one row's failure never blocks another's success.
func (s *importService) ImportArchives(ctx context.Context, r io.Reader, filename string) (*dto.ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, fmt.Errorf("file harus berformat Excel (.xlsx atau .xls): %w", apperrors.ErrMalformedInput)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("file Excel tidak valid atau corrupt: %w", apperrors.ErrMalformedInput)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("file Excel tidak memiliki sheet: %w", apperrors.ErrMalformedInput)
	}

	// Every row in the batch shares one entry timestamp.
	batchEntryDate := time.Now()

	result := &dto.ImportResult{Errors: []dto.ImportError{}}
	headerFound := false

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			s.recordError(result, dto.ImportError{Sheet: sheet, Error: fmt.Sprintf("sheet tidak dapat dibaca: %v", err)})
			continue
		}

		headerIdx := findHeaderRow(rows)
		if headerIdx < 0 {
			s.recordError(result, dto.ImportError{Sheet: sheet, Error: "tidak ditemukan baris header dengan kolom KODE UNIT"})
			continue
		}
		headerFound = true
		headers := normalizeHeaders(rows[headerIdx])

		for i, row := range rows[headerIdx+1:] {
			record := rowToRecord(headers, row)
			if len(record) == 0 {
				continue // blank row
			}

			// 1-based absolute row number within the sheet.
			rowNum := headerIdx + 2 + i
			result.TotalRows++

			archive, err := parseArchiveRow(record, batchEntryDate)
			if err == nil {
				err = s.archiveRepo.SaveArchive(ctx, archive)
			}
			if err != nil {
				result.FailedRows++
				s.recordError(result, dto.ImportError{Sheet: sheet, Row: rowNum, Error: err.Error(), Data: record})
				continue
			}
			result.SuccessRows++
		}
	}

	if !headerFound {
		return nil, fmt.Errorf("file Excel kosong atau tidak memiliki data: %w", apperrors.ErrMalformedInput)
	}
	return result, nil
}

func (s *importService) recordError(result *dto.ImportResult, e dto.ImportError) {
	if len(result.Errors) < maxReportedErrors {
		result.Errors = append(result.Errors, e)
	}
}

// findHeaderRow returns the index of the first row containing the KODE UNIT
// label, or -1 when the sheet has no usable header.
func findHeaderRow(rows [][]string) int {
	for i, row := range rows {
		for _, cell := range row {
			if strings.EqualFold(strings.TrimSpace(cell), headerKodeUnit) {
				return i
			}
		}
	}
	return -1
}

func normalizeHeaders(row []string) []string {
	headers := make([]string, len(row))
	for i, cell := range row {
		headers[i] = strings.ToUpper(strings.TrimSpace(cell))
	}
	return headers
}

// rowToRecord maps header labels to trimmed cell values, dropping empty
// cells so a fully blank row yields an empty record.
func rowToRecord(headers []string, row []string) map[string]string {
	record := map[string]string{}
	for i, cell := range row {
		if i >= len(headers) || headers[i] == "" {
			continue
		}
		value := strings.TrimSpace(cell)
		if value == "" {
			continue
		}
		record[headers[i]] = value
	}
	return record
}

// parseArchiveRow turns one raw header-to-value record into an archive
// ready for persistence. Only the three required columns can fail the row;
// optional fields fall back to nil or their defaults on any mismatch.
func parseArchiveRow(record map[string]string, entryDate time.Time) (domain.Archive, error) {
	if record["KODE UNIT"] == "" || record["NOMOR SURAT"] == "" || record["PERIHAL"] == "" {
		return domain.Archive{}, fmt.Errorf("kolom KODE UNIT, NOMOR SURAT, dan PERIHAL wajib diisi: %w", apperrors.ErrValidation)
	}

	tanggal := utils.ParseCellDate(record["TANGGAL"], time.Local)

	var tahun *int
	if y, err := strconv.Atoi(record["TAHUN"]); err == nil {
		tahun = &y
	} else if tanggal != nil {
		y := tanggal.Year()
		tahun = &y
	}

	status := domain.ArchiveStatusActive
	if mapped, ok := statusLabels[record["STATUS"]]; ok {
		status = mapped
	}

	return domain.Archive{
		ArchiveID:           uuid.NewString(),
		KodeUnit:            record["KODE UNIT"],
		Indeks:              optionalText(record, "INDEKS"),
		NomorBerkas:         optionalText(record, "NOMOR BERKAS"),
		NomorIsiBerkas:      optionalText(record, "NOMOR ISI BERKAS"),
		JudulBerkas:         optionalText(record, "JUDUL BERKAS"),
		JenisNaskahDinas:    optionalText(record, "JENIS NASKAH DINAS"),
		Klasifikasi:         optionalText(record, "KLASIFIKASI"),
		NomorSurat:          record["NOMOR SURAT"],
		Tanggal:             tanggal,
		Perihal:             record["PERIHAL"],
		Tahun:               tahun,
		TingkatPerkembangan: optionalText(record, "TINGKAT PERKEMBANGAN"),
		Kondisi:             optionalText(record, "KONDISI"),
		LokasiSimpan:        optionalText(record, "LOKASI SIMPAN"),
		RetensiAktif:        optionalText(record, "RETENSI AKTIF"),
		Keterangan:          optionalText(record, "KETERANGAN"),
		EntryDate:           entryDate,
		RetentionYears:      parseRetentionYears(record["RETENTION YEARS"]),
		Status:              status,
		CreatedAt:           entryDate,
		UpdatedAt:           entryDate,
	}, nil
}

func optionalText(record map[string]string, key string) *string {
	value, ok := record[key]
	if !ok || value == "" {
		return nil
	}
	return &value
}

// parseRetentionYears parses the retention column, defaulting to 2 on
// non-numeric or absent input. Fractional spreadsheet numbers are truncated.
func parseRetentionYears(raw string) int {
	if raw == "" {
		return defaultRetentionYears
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return defaultRetentionYears
}
