package pgsql

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// An outstanding loan past its due date counts as both ongoing and overdue,
// so an office with one such loan sees totalCount 1, ongoingCount 1 and
// overdueCount 1.
func TestCountLoansQuery_OngoingIncludesOverdue(t *testing.T) {
	filterRe := regexp.MustCompile(`FILTER \(WHERE ([^)]+)\)`)
	matches := filterRe.FindAllStringSubmatch(countLoansQuery, -1)
	require.Len(t, matches, 3)

	assert.Equal(t, "tanggal_pengembalian IS NULL", matches[0][1])
	assert.Equal(t, "tanggal_pengembalian IS NOT NULL", matches[1][1])
	assert.Equal(t, "tanggal_pengembalian IS NULL AND tanggal_harus_kembali < $1", matches[2][1])
}
