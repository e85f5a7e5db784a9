package services

import (
	"context"
	"io"

	"github.com/arsipku/arsip_backend/internal/dto"
)

// ImportSvcFacade defines the batch spreadsheet import operation.
type ImportSvcFacade interface {
	// ImportArchives parses an uploaded workbook and persists every valid
	// row, aggregating per-row failures instead of aborting the batch. Only
	// a malformed upload (wrong extension, corrupt file, no usable sheet)
	// returns an error.
	ImportArchives(ctx context.Context, r io.Reader, filename string) (*dto.ImportResult, error)
}
