package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// archiveHandler handles HTTP requests related to archive records.
type archiveHandler struct {
	archiveService portssvc.ArchiveSvcFacade
	importService  portssvc.ImportSvcFacade
}

func newArchiveHandler(as portssvc.ArchiveSvcFacade, is portssvc.ImportSvcFacade) *archiveHandler {
	return &archiveHandler{
		archiveService: as,
		importService:  is,
	}
}

// registerArchiveRoutes registers all archive-related routes.
func registerArchiveRoutes(r *gin.Engine, archiveService portssvc.ArchiveSvcFacade, importService portssvc.ImportSvcFacade) {
	h := newArchiveHandler(archiveService, importService)

	archives := r.Group("/archives")
	{
		archives.GET("", h.listArchives)
		archives.POST("", h.createArchive)
		archives.GET("/stats", h.getStats)
		archives.GET("/export", h.exportArchives)
		archives.POST("/import", h.importArchives)
		archives.GET("/:id", h.getArchive)
		archives.PUT("/:id", h.updateArchive)
		archives.DELETE("/:id", h.deleteArchive)
	}
}

// collectColumnFilters extracts filter[<col>] query parameters. Unknown
// column names survive here; the repository allow-list drops them.
func collectColumnFilters(c *gin.Context) map[string]string {
	filters := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if !strings.HasPrefix(key, "filter[") || !strings.HasSuffix(key, "]") {
			continue
		}
		column := key[len("filter[") : len(key)-1]
		if column == "" || len(values) == 0 || values[0] == "" {
			continue
		}
		filters[column] = values[0]
	}
	return filters
}

// listArchives godoc
// @Summary List archives
// @Description Retrieves a filtered, sorted, paginated page of archive records
// @Tags archives
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Param search query string false "Free-text search"
// @Param status query string false "Exact status filter"
// @Param sort query string false "Sort field" default(entryDate)
// @Param order query string false "Sort direction (asc/desc)" default(desc)
// @Success 200 {object} dto.ListArchivesResponse
// @Failure 500 {object} ErrorResponse
// @Router /archives [get]
func (h *archiveHandler) listArchives(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListArchivesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	params.Filters = collectColumnFilters(c)
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 10
	}

	archives, total, err := h.archiveService.ListArchives(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list archives", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch archives"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListArchivesResponse(archives, params.Page, params.Limit, total))
}

// createArchive godoc
// @Summary Create an archive
// @Description Registers a new archive record
// @Tags archives
// @Accept json
// @Produce json
// @Param archive body dto.CreateArchiveRequest true "Archive details"
// @Success 201 {object} dto.ArchiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /archives [post]
func (h *archiveHandler) createArchive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	archive, err := h.archiveService.CreateArchive(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to create archive", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create archive"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToArchiveResponse(archive))
}

// getArchive godoc
// @Summary Get an archive by ID
// @Tags archives
// @Produce json
// @Param id path string true "Archive ID"
// @Success 200 {object} dto.ArchiveResponse
// @Failure 404 {object} ErrorResponse
// @Router /archives/{id} [get]
func (h *archiveHandler) getArchive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	archive, err := h.archiveService.GetArchiveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Archive not found"})
			return
		}
		logger.Error("Failed to get archive", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve archive"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveResponse(archive))
}

// updateArchive godoc
// @Summary Update an archive
// @Tags archives
// @Accept json
// @Produce json
// @Param id path string true "Archive ID"
// @Param archive body dto.UpdateArchiveRequest true "Fields to update"
// @Success 200 {object} dto.ArchiveResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /archives/{id} [put]
func (h *archiveHandler) updateArchive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	archive, err := h.archiveService.UpdateArchive(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Archive not found"})
			return
		}
		logger.Error("Failed to update archive", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update archive"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveResponse(archive))
}

// deleteArchive godoc
// @Summary Delete an archive
// @Tags archives
// @Param id path string true "Archive ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /archives/{id} [delete]
func (h *archiveHandler) deleteArchive(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.archiveService.DeleteArchive(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Archive not found"})
			return
		}
		logger.Error("Failed to delete archive", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete archive"})
		return
	}

	c.Status(http.StatusNoContent)
}

// getStats godoc
// @Summary Archive statistics
// @Description Record counts per retention status
// @Tags archives
// @Produce json
// @Success 200 {object} dto.ArchiveStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /archives/stats [get]
func (h *archiveHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.archiveService.GetArchiveStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get archive stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch archive statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToArchiveStatsResponse(stats))
}

// importArchives godoc
// @Summary Import archives from a spreadsheet
// @Description Processes every data row of every sheet; per-row failures are aggregated, not fatal
// @Tags archives
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx or .xls)"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /archives/import [post]
func (h *archiveHandler) importArchives(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "No file uploaded"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportArchives(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		if errors.Is(err, apperrors.ErrMalformedInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Terjadi kesalahan saat mengimpor file"})
		return
	}

	logger.Info("Import completed",
		slog.Int("total_rows", result.TotalRows),
		slog.Int("success_rows", result.SuccessRows),
		slog.Int("failed_rows", result.FailedRows),
	)
	c.JSON(http.StatusOK, result)
}

// exportArchives godoc
// @Summary Export archives to a spreadsheet
// @Description Downloads the full filtered set in the import template layout
// @Tags archives
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse
// @Router /archives/export [get]
func (h *archiveHandler) exportArchives(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListArchivesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	params.Filters = collectColumnFilters(c)

	f, err := h.archiveService.ExportArchives(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to export archives", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to export archives"})
		return
	}

	filename := "arsip-" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		logger.Error("Failed to write export file", slog.String("error", err.Error()))
	}
}
