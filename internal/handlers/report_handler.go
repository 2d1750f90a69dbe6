package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "kasiswa/internal/errors"
	"kasiswa/internal/export"
	"kasiswa/internal/logger"
	"kasiswa/internal/models"
	"kasiswa/internal/services"
)

// ReportHandler handles filtered report listings and their CSV/PDF exports.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// parseReportFilter builds the report filter from query parameters. Every
// predicate defaults to "all": an absent or literal "all" value leaves the
// predicate unset.
//
// The date range is only honored as a complete, well-formed pair. A single
// endpoint or an unparseable value skips the date predicate entirely instead
// of failing the request; that fallback is logged, never raised.
func parseReportFilter(c *gin.Context) (services.ReportFilter, error) {
	var filter services.ReportFilter

	if v := c.Query("payment_month"); v != "" && v != "all" {
		if !models.IsPaymentMonth(v) {
			return filter, apperrors.ErrInvalidPaymentMonth
		}
		filter.PaymentMonth = &v
	}

	if v := c.Query("payment_year"); v != "" && v != "all" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid payment_year")
		}
		filter.PaymentYear = &year
	}

	if v := c.Query("type"); v != "" && v != "all" {
		if !models.IsValidTransactionType(v) {
			return filter, apperrors.ErrInvalidTransactionType
		}
		filter.Type = &v
	}

	fromStr, toStr := c.Query("from_date"), c.Query("to_date")
	if fromStr != "" && toStr != "" {
		from, fromErr := parseFlexibleTime(fromStr)
		to, toErr := parseFlexibleTime(toStr)
		if fromErr == nil && toErr == nil {
			filter.FromDate = &from
			filter.ToDate = &to
		} else {
			logger.Get().Warnw("skipping malformed date range filter",
				"from_date", fromStr,
				"to_date", toStr,
			)
		}
	} else if fromStr != "" || toStr != "" {
		logger.Get().Warnw("skipping half-open date range filter",
			"from_date", fromStr,
			"to_date", toStr,
		)
	}

	return filter, nil
}

// GetReport handles the filtered report listing
func (h *ReportHandler) GetReport(c *gin.Context) {
	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.GetReport(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rows": rows, "count": len(rows)})
}

// ExportCSV handles the CSV download of the filtered report
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.GetReport(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="laporan.csv"`)
	c.Header("Content-Type", "text/csv")
	c.Status(http.StatusOK)
	if err := export.WriteCSV(c.Writer, rows); err != nil {
		logger.Get().Errorw("csv export failed", "error", err.Error())
	}
}

// ExportPDF handles the PDF download of the filtered report
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	filter, err := parseReportFilter(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	rows, err := h.reportService.GetReport(filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="laporan.pdf"`)
	c.Header("Content-Type", "application/pdf")
	c.Status(http.StatusOK)
	if err := export.WritePDF(c.Writer, rows); err != nil {
		logger.Get().Errorw("pdf export failed", "error", err.Error())
	}
}
