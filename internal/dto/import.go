package dto

// ImportError describes one failed spreadsheet row (or a sheet that could
// not be processed at all). Row is the 1-based absolute row number within
// the sheet; Data holds the raw header-to-cell mapping of the failed row.
type ImportError struct {
	Sheet string            `json:"sheet"`
	Row   int               `json:"row"`
	Error string            `json:"error"`
	Data  map[string]string `json:"data,omitempty"`
}

// ImportResult aggregates a whole batch import. SuccessRows and FailedRows
// always reflect the true totals even though Errors is capped.
type ImportResult struct {
	TotalRows   int           `json:"totalRows"`
	SuccessRows int           `json:"successRows"`
	FailedRows  int           `json:"failedRows"`
	Errors      []ImportError `json:"errors"`
}
