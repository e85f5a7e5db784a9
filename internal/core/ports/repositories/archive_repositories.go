package repositories

import (
	"context"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// ArchiveReader defines read operations for archive records.
type ArchiveReader interface {
	// FindArchiveByID retrieves a single archive by its ID.
	FindArchiveByID(ctx context.Context, archiveID string) (*domain.Archive, error)

	// FindArchives retrieves a filtered/sorted page of archives together
	// with the total count of the full filtered set.
	FindArchives(ctx context.Context, filter domain.ArchiveFilter) ([]domain.Archive, int64, error)

	// CountArchivesByStatus aggregates record counts per retention status.
	CountArchivesByStatus(ctx context.Context) (*domain.ArchiveStats, error)
}

// ArchiveWriter defines write operations for archive records.
type ArchiveWriter interface {
	// SaveArchive persists a new archive.
	SaveArchive(ctx context.Context, archive domain.Archive) error

	// UpdateArchive updates an existing archive's details.
	UpdateArchive(ctx context.Context, archive domain.Archive) error

	// DeleteArchive physically removes an archive.
	DeleteArchive(ctx context.Context, archiveID string) error
}

// ArchiveRepositoryFacade combines all archive repository interfaces.
type ArchiveRepositoryFacade interface {
	ArchiveReader
	ArchiveWriter
}
