package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const defaultRetentionYears = 2

type archiveService struct {
	archiveRepo portsrepo.ArchiveRepositoryFacade
}

func NewArchiveService(archiveRepo portsrepo.ArchiveRepositoryFacade) *archiveService {
	return &archiveService{archiveRepo: archiveRepo}
}

func (s *archiveService) CreateArchive(ctx context.Context, req dto.CreateArchiveRequest) (*domain.Archive, error) {
	now := time.Now()

	entryDate := now
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}
	retentionYears := defaultRetentionYears
	if req.RetentionYears != nil {
		retentionYears = *req.RetentionYears
	}
	status := domain.ArchiveStatus(req.Status)
	if !status.IsValid() {
		status = domain.ArchiveStatusActive
	}

	tahun := req.Tahun
	if tahun == nil && req.Tanggal != nil {
		year := req.Tanggal.Year()
		tahun = &year
	}

	archive := domain.Archive{
		ArchiveID:           uuid.NewString(),
		KodeUnit:            req.KodeUnit,
		Indeks:              req.Indeks,
		NomorBerkas:         req.NomorBerkas,
		NomorIsiBerkas:      req.NomorIsiBerkas,
		JudulBerkas:         req.JudulBerkas,
		JenisNaskahDinas:    req.JenisNaskahDinas,
		Klasifikasi:         req.Klasifikasi,
		NomorSurat:          req.NomorSurat,
		Tanggal:             req.Tanggal,
		Perihal:             req.Perihal,
		Tahun:               tahun,
		TingkatPerkembangan: req.TingkatPerkembangan,
		Kondisi:             req.Kondisi,
		LokasiSimpan:        req.LokasiSimpan,
		RetensiAktif:        req.RetensiAktif,
		Keterangan:          req.Keterangan,
		EntryDate:           entryDate,
		RetentionYears:      retentionYears,
		Status:              status,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.archiveRepo.SaveArchive(ctx, archive); err != nil {
		return nil, fmt.Errorf("failed to create archive in service: %w", err)
	}
	return &archive, nil
}

func (s *archiveService) GetArchiveByID(ctx context.Context, archiveID string) (*domain.Archive, error) {
	archive, err := s.archiveRepo.FindArchiveByID(ctx, archiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get archive by ID in service: %w", err)
	}
	return archive, nil
}

// toArchiveFilter normalizes the list parameters: page and limit are
// clamped and the zero-based offset is (page-1)*limit.
func toArchiveFilter(params dto.ListArchivesParams) domain.ArchiveFilter {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}
	return domain.ArchiveFilter{
		Search:        params.Search,
		Status:        params.Status,
		ColumnFilters: params.Filters,
		SortBy:        params.Sort,
		SortOrder:     params.Order,
		Limit:         limit,
		Offset:        (page - 1) * limit,
	}
}

func (s *archiveService) ListArchives(ctx context.Context, params dto.ListArchivesParams) ([]domain.Archive, int64, error) {
	archives, total, err := s.archiveRepo.FindArchives(ctx, toArchiveFilter(params))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list archives in service: %w", err)
	}
	return archives, total, nil
}

func (s *archiveService) UpdateArchive(ctx context.Context, archiveID string, req dto.UpdateArchiveRequest) (*domain.Archive, error) {
	archive, err := s.archiveRepo.FindArchiveByID(ctx, archiveID)
	if err != nil {
		return nil, fmt.Errorf("failed to load archive for update: %w", err)
	}

	if req.KodeUnit != nil {
		archive.KodeUnit = *req.KodeUnit
	}
	if req.Indeks != nil {
		archive.Indeks = req.Indeks
	}
	if req.NomorBerkas != nil {
		archive.NomorBerkas = req.NomorBerkas
	}
	if req.NomorIsiBerkas != nil {
		archive.NomorIsiBerkas = req.NomorIsiBerkas
	}
	if req.JudulBerkas != nil {
		archive.JudulBerkas = req.JudulBerkas
	}
	if req.JenisNaskahDinas != nil {
		archive.JenisNaskahDinas = req.JenisNaskahDinas
	}
	if req.Klasifikasi != nil {
		archive.Klasifikasi = req.Klasifikasi
	}
	if req.NomorSurat != nil {
		archive.NomorSurat = *req.NomorSurat
	}
	if req.Tanggal != nil {
		archive.Tanggal = req.Tanggal
	}
	if req.Perihal != nil {
		archive.Perihal = *req.Perihal
	}
	if req.Tahun != nil {
		archive.Tahun = req.Tahun
	}
	if req.TingkatPerkembangan != nil {
		archive.TingkatPerkembangan = req.TingkatPerkembangan
	}
	if req.Kondisi != nil {
		archive.Kondisi = req.Kondisi
	}
	if req.LokasiSimpan != nil {
		archive.LokasiSimpan = req.LokasiSimpan
	}
	if req.RetensiAktif != nil {
		archive.RetensiAktif = req.RetensiAktif
	}
	if req.Keterangan != nil {
		archive.Keterangan = req.Keterangan
	}
	if req.RetentionYears != nil {
		archive.RetentionYears = *req.RetentionYears
	}
	if req.Status != nil {
		status := domain.ArchiveStatus(*req.Status)
		if status.IsValid() {
			archive.Status = status
		}
	}
	archive.UpdatedAt = time.Now()

	if err := s.archiveRepo.UpdateArchive(ctx, *archive); err != nil {
		return nil, fmt.Errorf("failed to update archive in service: %w", err)
	}
	return archive, nil
}

func (s *archiveService) DeleteArchive(ctx context.Context, archiveID string) error {
	if err := s.archiveRepo.DeleteArchive(ctx, archiveID); err != nil {
		return fmt.Errorf("failed to delete archive in service: %w", err)
	}
	return nil
}

func (s *archiveService) GetArchiveStats(ctx context.Context) (*domain.ArchiveStats, error) {
	stats, err := s.archiveRepo.CountArchivesByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get archive stats in service: %w", err)
	}
	return stats, nil
}

// ExportArchives writes the full filtered set (ignoring pagination) into a
// workbook whose header row matches the import template.
func (s *archiveService) ExportArchives(ctx context.Context, params dto.ListArchivesParams) (*excelize.File, error) {
	filter := toArchiveFilter(params)
	filter.Limit = exportPageLimit
	filter.Offset = 0

	archives, _, err := s.archiveRepo.FindArchives(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to load archives for export: %w", err)
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := make([]interface{}, len(importHeaderOrder))
	for i, h := range importHeaderOrder {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write export header row: %w", err)
	}

	for i := range archives {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, archiveToExportRow(&archives[i])); err != nil {
			return nil, fmt.Errorf("failed to write export row %d: %w", i+2, err)
		}
	}
	return f, nil
}

// exportPageLimit bounds a single export; well above any realistic office
// archive count.
const exportPageLimit = 100000

func archiveToExportRow(a *domain.Archive) *[]interface{} {
	str := func(p *string) string {
		if p == nil {
			return ""
		}
		return *p
	}
	tanggal := ""
	if a.Tanggal != nil {
		tanggal = a.Tanggal.Format("2006-01-02")
	}
	tahun := ""
	if a.Tahun != nil {
		tahun = strconv.Itoa(*a.Tahun)
	}
	row := []interface{}{
		a.KodeUnit,
		str(a.Indeks),
		str(a.NomorBerkas),
		str(a.JudulBerkas),
		str(a.NomorIsiBerkas),
		str(a.JenisNaskahDinas),
		str(a.Klasifikasi),
		a.NomorSurat,
		tanggal,
		a.Perihal,
		tahun,
		str(a.TingkatPerkembangan),
		str(a.Kondisi),
		str(a.LokasiSimpan),
		str(a.RetensiAktif),
		str(a.Keterangan),
		a.RetentionYears,
		string(a.Status),
	}
	return &row
}
