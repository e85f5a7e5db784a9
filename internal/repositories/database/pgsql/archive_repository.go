package pgsql

import (
	"errors"
	"fmt"

	"context"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	"github.com/arsipku/arsip_backend/internal/core/domain"
	portsrepo "github.com/arsipku/arsip_backend/internal/core/ports/repositories"
	"github.com/arsipku/arsip_backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const archiveColumns = `archive_id, kode_unit, indeks, nomor_berkas, nomor_isi_berkas,
		judul_berkas, jenis_naskah_dinas, klasifikasi, nomor_surat, tanggal, perihal,
		tahun, tingkat_perkembangan, kondisi, lokasi_simpan, retensi_aktif, keterangan,
		entry_date, retention_years, status, created_at, updated_at`

type PgxArchiveRepository struct {
	db *pgxpool.Pool
}

func newPgxArchiveRepository(db *pgxpool.Pool) portsrepo.ArchiveRepositoryFacade {
	return &PgxArchiveRepository{db: db}
}

var _ portsrepo.ArchiveRepositoryFacade = (*PgxArchiveRepository)(nil)

// Helper to convert domain.Archive to models.Archive
func toModelArchive(d domain.Archive) models.Archive {
	return models.Archive{
		ArchiveID:           d.ArchiveID,
		KodeUnit:            d.KodeUnit,
		Indeks:              d.Indeks,
		NomorBerkas:         d.NomorBerkas,
		NomorIsiBerkas:      d.NomorIsiBerkas,
		JudulBerkas:         d.JudulBerkas,
		JenisNaskahDinas:    d.JenisNaskahDinas,
		Klasifikasi:         d.Klasifikasi,
		NomorSurat:          d.NomorSurat,
		Tanggal:             d.Tanggal,
		Perihal:             d.Perihal,
		Tahun:               d.Tahun,
		TingkatPerkembangan: d.TingkatPerkembangan,
		Kondisi:             d.Kondisi,
		LokasiSimpan:        d.LokasiSimpan,
		RetensiAktif:        d.RetensiAktif,
		Keterangan:          d.Keterangan,
		EntryDate:           d.EntryDate,
		RetentionYears:      d.RetentionYears,
		Status:              string(d.Status),
		CreatedAt:           d.CreatedAt,
		UpdatedAt:           d.UpdatedAt,
	}
}

// Helper to convert models.Archive to domain.Archive
func toDomainArchive(m models.Archive) domain.Archive {
	return domain.Archive{
		ArchiveID:           m.ArchiveID,
		KodeUnit:            m.KodeUnit,
		Indeks:              m.Indeks,
		NomorBerkas:         m.NomorBerkas,
		NomorIsiBerkas:      m.NomorIsiBerkas,
		JudulBerkas:         m.JudulBerkas,
		JenisNaskahDinas:    m.JenisNaskahDinas,
		Klasifikasi:         m.Klasifikasi,
		NomorSurat:          m.NomorSurat,
		Tanggal:             m.Tanggal,
		Perihal:             m.Perihal,
		Tahun:               m.Tahun,
		TingkatPerkembangan: m.TingkatPerkembangan,
		Kondisi:             m.Kondisi,
		LokasiSimpan:        m.LokasiSimpan,
		RetensiAktif:        m.RetensiAktif,
		Keterangan:          m.Keterangan,
		EntryDate:           m.EntryDate,
		RetentionYears:      m.RetentionYears,
		Status:              domain.ArchiveStatus(m.Status),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func scanArchive(row pgx.Row) (models.Archive, error) {
	var m models.Archive
	err := row.Scan(
		&m.ArchiveID,
		&m.KodeUnit,
		&m.Indeks,
		&m.NomorBerkas,
		&m.NomorIsiBerkas,
		&m.JudulBerkas,
		&m.JenisNaskahDinas,
		&m.Klasifikasi,
		&m.NomorSurat,
		&m.Tanggal,
		&m.Perihal,
		&m.Tahun,
		&m.TingkatPerkembangan,
		&m.Kondisi,
		&m.LokasiSimpan,
		&m.RetensiAktif,
		&m.Keterangan,
		&m.EntryDate,
		&m.RetentionYears,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxArchiveRepository) SaveArchive(ctx context.Context, archive domain.Archive) error {
	m := toModelArchive(archive)
	query := `
        INSERT INTO archives (` + archiveColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
    `
	_, err := r.db.Exec(ctx, query,
		m.ArchiveID,
		m.KodeUnit,
		m.Indeks,
		m.NomorBerkas,
		m.NomorIsiBerkas,
		m.JudulBerkas,
		m.JenisNaskahDinas,
		m.Klasifikasi,
		m.NomorSurat,
		m.Tanggal,
		m.Perihal,
		m.Tahun,
		m.TingkatPerkembangan,
		m.Kondisi,
		m.LokasiSimpan,
		m.RetensiAktif,
		m.Keterangan,
		m.EntryDate,
		m.RetentionYears,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save archive: %w", err)
	}
	return nil
}

func (r *PgxArchiveRepository) FindArchiveByID(ctx context.Context, archiveID string) (*domain.Archive, error) {
	query := `SELECT ` + archiveColumns + ` FROM archives WHERE archive_id = $1;`
	m, err := scanArchive(r.db.QueryRow(ctx, query, archiveID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find archive by ID %s: %w", archiveID, err)
	}
	d := toDomainArchive(m)
	return &d, nil
}

func (r *PgxArchiveRepository) FindArchives(ctx context.Context, filter domain.ArchiveFilter) ([]domain.Archive, int64, error) {
	whereSQL, orderSQL, args := buildArchiveListQuery(filter)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM archives %s;", whereSQL)
	var total int64
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count archives: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	pageArgs := append(args, limit, offset)
	listQuery := fmt.Sprintf(
		"SELECT %s FROM archives %s %s LIMIT $%d OFFSET $%d;",
		archiveColumns, whereSQL, orderSQL, len(pageArgs)-1, len(pageArgs),
	)

	rows, err := r.db.Query(ctx, listQuery, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query archives: %w", err)
	}
	defer rows.Close()

	archives := []domain.Archive{}
	for rows.Next() {
		m, err := scanArchive(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan archive row: %w", err)
		}
		archives = append(archives, toDomainArchive(m))
	}
	if rows.Err() != nil {
		return nil, 0, fmt.Errorf("error iterating archive rows: %w", rows.Err())
	}

	return archives, total, nil
}

func (r *PgxArchiveRepository) UpdateArchive(ctx context.Context, archive domain.Archive) error {
	m := toModelArchive(archive)
	query := `
        UPDATE archives SET
            kode_unit = $1, indeks = $2, nomor_berkas = $3, nomor_isi_berkas = $4,
            judul_berkas = $5, jenis_naskah_dinas = $6, klasifikasi = $7, nomor_surat = $8,
            tanggal = $9, perihal = $10, tahun = $11, tingkat_perkembangan = $12,
            kondisi = $13, lokasi_simpan = $14, retensi_aktif = $15, keterangan = $16,
            retention_years = $17, status = $18, updated_at = $19
        WHERE archive_id = $20;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		m.KodeUnit,
		m.Indeks,
		m.NomorBerkas,
		m.NomorIsiBerkas,
		m.JudulBerkas,
		m.JenisNaskahDinas,
		m.Klasifikasi,
		m.NomorSurat,
		m.Tanggal,
		m.Perihal,
		m.Tahun,
		m.TingkatPerkembangan,
		m.Kondisi,
		m.LokasiSimpan,
		m.RetensiAktif,
		m.Keterangan,
		m.RetentionYears,
		m.Status,
		m.UpdatedAt,
		m.ArchiveID,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update archive query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("archive not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxArchiveRepository) DeleteArchive(ctx context.Context, archiveID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM archives WHERE archive_id = $1;`, archiveID)
	if err != nil {
		return fmt.Errorf("failed to delete archive: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("archive not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxArchiveRepository) CountArchivesByStatus(ctx context.Context) (*domain.ArchiveStats, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(*) FILTER (WHERE status = 'ACTIVE'),
            COUNT(*) FILTER (WHERE status = 'INACTIVE'),
            COUNT(*) FILTER (WHERE status = 'DISPOSE_ELIGIBLE')
        FROM archives;
    `
	var stats domain.ArchiveStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.Total, &stats.Active, &stats.Inactive, &stats.Dispose)
	if err != nil {
		return nil, fmt.Errorf("failed to count archives by status: %w", err)
	}
	return &stats, nil
}
