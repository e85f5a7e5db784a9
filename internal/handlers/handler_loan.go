package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/arsipku/arsip_backend/internal/apperrors"
	portssvc "github.com/arsipku/arsip_backend/internal/core/ports/services"
	"github.com/arsipku/arsip_backend/internal/dto"
	"github.com/arsipku/arsip_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loanHandler handles HTTP requests related to peminjaman (loans).
type loanHandler struct {
	loanService portssvc.LoanSvcFacade
}

func newLoanHandler(ls portssvc.LoanSvcFacade) *loanHandler {
	return &loanHandler{loanService: ls}
}

// registerLoanRoutes registers all loan-related routes.
func registerLoanRoutes(r *gin.Engine, loanService portssvc.LoanSvcFacade) {
	h := newLoanHandler(loanService)

	loans := r.Group("/peminjaman")
	{
		loans.GET("", h.listLoans)
		loans.POST("", h.createLoan)
		loans.GET("/stats", h.getStats)
		loans.PUT("/:id/return", h.returnLoan)
	}
}

// listLoans godoc
// @Summary List loans
// @Description Retrieves loans filtered by archive ID or borrower name, newest first
// @Tags peminjaman
// @Produce json
// @Param archiveId query string false "Filter by archive ID"
// @Param peminjam query string false "Borrower name substring"
// @Success 200 {object} dto.ListLoansResponse
// @Failure 500 {object} ErrorResponse
// @Router /peminjaman [get]
func (h *loanHandler) listLoans(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListLoansParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	loans, err := h.loanService.ListLoans(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list loans", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch peminjaman"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLoansResponse(loans, time.Now()))
}

// createLoan godoc
// @Summary Create a loan
// @Description Checks an archive out to a borrower; the due date defaults to seven days after the loan date
// @Tags peminjaman
// @Accept json
// @Produce json
// @Param loan body dto.CreateLoanRequest true "Loan details"
// @Success 201 {object} dto.CreateLoanResponse
// @Failure 400 {object} ErrorResponse "Validation error or letter number already in use"
// @Failure 404 {object} ErrorResponse "Archive not found"
// @Failure 500 {object} ErrorResponse
// @Router /peminjaman [post]
func (h *loanHandler) createLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.CreateLoan(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Archive not found"})
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Nomor surat peminjaman sudah digunakan"})
		default:
			logger.Error("Failed to create loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create peminjaman"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.CreateLoanResponse{
		Success: true,
		Data:    dto.ToLoanResponse(loan, time.Now()),
		Message: "Peminjaman created successfully",
	})
}

// returnLoan godoc
// @Summary Return a loan
// @Description Sets the return date on an outstanding loan
// @Tags peminjaman
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param body body dto.ReturnLoanRequest false "Optional return timestamp override"
// @Success 200 {object} dto.LoanResponse
// @Failure 400 {object} ErrorResponse "Loan already returned"
// @Failure 404 {object} ErrorResponse
// @Router /peminjaman/{id}/return [put]
func (h *loanHandler) returnLoan(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReturnLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	loan, err := h.loanService.ReturnLoan(c.Request.Context(), c.Param("id"), req.TanggalPengembalian)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Peminjaman not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Peminjaman sudah dikembalikan"})
		default:
			logger.Error("Failed to return loan", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to return peminjaman"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanResponse(loan, time.Now()))
}

// getStats godoc
// @Summary Loan statistics
// @Description Loan counts by derived status (ongoing, returned, overdue)
// @Tags peminjaman
// @Produce json
// @Success 200 {object} dto.LoanStatsResponse
// @Failure 500 {object} ErrorResponse
// @Router /peminjaman/stats [get]
func (h *loanHandler) getStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.loanService.GetLoanStats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get loan stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch peminjaman statistics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLoanStatsResponse(stats))
}
