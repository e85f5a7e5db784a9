package services

import (
	"context"

	"github.com/arsipku/arsip_backend/internal/core/domain"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/xuri/excelize/v2"
)

// ArchiveReaderSvc defines read operations over archive records.
type ArchiveReaderSvc interface {
	// GetArchiveByID retrieves a single archive.
	GetArchiveByID(ctx context.Context, archiveID string) (*domain.Archive, error)

	// ListArchives retrieves a filtered page plus the total filtered count.
	ListArchives(ctx context.Context, params dto.ListArchivesParams) ([]domain.Archive, int64, error)

	// GetArchiveStats aggregates record counts per retention status.
	GetArchiveStats(ctx context.Context) (*domain.ArchiveStats, error)

	// ExportArchives builds a spreadsheet of the full filtered set.
	ExportArchives(ctx context.Context, params dto.ListArchivesParams) (*excelize.File, error)
}

// ArchiveWriterSvc defines write operations over archive records.
type ArchiveWriterSvc interface {
	// CreateArchive registers a new archive record.
	CreateArchive(ctx context.Context, req dto.CreateArchiveRequest) (*domain.Archive, error)

	// UpdateArchive applies a partial update to an existing archive.
	UpdateArchive(ctx context.Context, archiveID string, req dto.UpdateArchiveRequest) (*domain.Archive, error)

	// DeleteArchive physically removes an archive record.
	DeleteArchive(ctx context.Context, archiveID string) error
}

// ArchiveSvcFacade combines the archive service interfaces.
type ArchiveSvcFacade interface {
	ArchiveReaderSvc
	ArchiveWriterSvc
}
