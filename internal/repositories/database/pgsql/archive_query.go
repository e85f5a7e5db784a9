package pgsql

import (
	"fmt"
	"strings"

	"github.com/arsipku/arsip_backend/internal/core/domain"
)

// archiveSortColumns maps the externally visible sort field names onto the
// actual columns. Anything outside this allow-list falls back to
// entry_date DESC.
var archiveSortColumns = map[string]string{
	"entryDate":    "entry_date",
	"nomorSurat":   "nomor_surat",
	"nomorBerkas":  "nomor_berkas",
	"lokasiSimpan": "lokasi_simpan",
	"status":       "status",
}

// archiveFilterColumns is the allow-list of filter[<col>] parameters, in a
// fixed order so the generated SQL is deterministic.
var archiveFilterColumns = []struct {
	Param  string
	Column string
}{
	{"nomorSurat", "nomor_surat"},
	{"judulBerkas", "judul_berkas"},
	{"lokasiSimpan", "lokasi_simpan"},
	{"jenisNaskahDinas", "jenis_naskah_dinas"},
	{"kodeUnit", "kode_unit"},
}

// archiveSearchColumns are ORed together for free-text search.
var archiveSearchColumns = []string{
	"kode_unit", "nomor_surat", "perihal", "nomor_berkas", "lokasi_simpan", "judul_berkas",
}

// buildArchiveListQuery translates a filter into a WHERE clause, an ORDER BY
// clause and the bound arguments. Filter and sort names come from request
// query strings, so column names are only ever taken from the allow-lists
// above and values are only ever bound as placeholders.
func buildArchiveListQuery(f domain.ArchiveFilter) (whereSQL string, orderSQL string, args []interface{}) {
	var conditions []string

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		ors := make([]string, len(archiveSearchColumns))
		for i, col := range archiveSearchColumns {
			ors[i] = fmt.Sprintf("%s ILIKE %s", col, placeholder)
		}
		conditions = append(conditions, "("+strings.Join(ors, " OR ")+")")
	}

	if f.Status != "" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	for _, fc := range archiveFilterColumns {
		value, ok := f.ColumnFilters[fc.Param]
		if !ok || value == "" {
			continue
		}
		args = append(args, "%"+value+"%")
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $%d", fc.Column, len(args)))
	}

	if len(conditions) > 0 {
		whereSQL = "WHERE " + strings.Join(conditions, " AND ")
	}

	sortColumn, ok := archiveSortColumns[f.SortBy]
	if !ok {
		orderSQL = "ORDER BY entry_date DESC"
		return whereSQL, orderSQL, args
	}

	direction := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		direction = "ASC"
	}
	orderSQL = fmt.Sprintf("ORDER BY %s %s", sortColumn, direction)
	return whereSQL, orderSQL, args
}
