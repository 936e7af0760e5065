package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "duitku/internal/errors"
	"duitku/internal/models"
	"duitku/internal/query"
	"duitku/internal/report"
	"duitku/internal/store"
)

// ReportHandler serves the aggregation and summary projections.
type ReportHandler struct {
	store *store.Store
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(s *store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

// reportPeriod parses the period query parameter, defaulting to all-time.
func reportPeriod(c *gin.Context) (query.Period, error) {
	v := c.DefaultQuery("period", string(query.PeriodAllTime))
	p := query.Period(v)
	if !p.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput,
			"invalid period, must be current-month, last-month, current-quarter, current-year, last-year, or all-time")
	}
	return p, nil
}

// periodRecords returns the store's records restricted to the named period.
func (h *ReportHandler) periodRecords(c *gin.Context) ([]models.Transaction, query.Period, error) {
	p, err := reportPeriod(c)
	if err != nil {
		return nil, "", err
	}
	return query.ByPeriod(h.store.List(), p, time.Now()), p, nil
}

// GetOverview returns the overall summary across the whole store.
func (h *ReportHandler) GetOverview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"summary": report.Overall(h.store.List())})
}

// GetSummary returns the report summary for a named period: totals, saving
// rate, daily averages, health score, and per-kind counts.
func (h *ReportHandler) GetSummary(c *gin.Context) {
	records, p, err := h.periodRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": report.Summarize(records, p, time.Now())})
}

// GetCategoryReport returns per-category aggregates for a named period,
// optionally restricted to one transaction type. Percentage shares are
// computed against the filtered set, so a type-restricted report yields
// shares within that type.
func (h *ReportHandler) GetCategoryReport(c *gin.Context) {
	records, _, err := h.periodRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if v := c.Query("type"); v != "" {
		t := models.TransactionType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid type, must be income or expense"))
			return
		}
		records = query.Filter(records, query.Criteria{Type: t})
	}

	aggs := report.ByCategory(records)
	response := gin.H{"categories": aggs}
	if top, ok := report.TopCategory(aggs); ok {
		response["top_category"] = top
	}
	c.JSON(http.StatusOK, response)
}

// GetPeriodReport returns per-month or per-year aggregates for a named period.
func (h *ReportHandler) GetPeriodReport(c *gin.Context) {
	records, _, err := h.periodRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	g := report.Granularity(c.DefaultQuery("granularity", string(report.GranularityMonth)))
	if !g.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid granularity, must be month or year"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"periods": report.ByPeriod(records, g)})
}

// GetComparison returns the current vs previous month or year comparison.
// Change fields are null when the previous period value is zero.
func (h *ReportHandler) GetComparison(c *gin.Context) {
	g := report.Granularity(c.DefaultQuery("granularity", string(report.GranularityMonth)))
	if !g.Valid() {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid granularity, must be month or year"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"comparison": report.Compare(h.store.List(), g, time.Now())})
}

// ExportReport returns the full-report JSON document for a named period.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	records, p, err := h.periodRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	now := time.Now()
	filename := fmt.Sprintf("laporan-keuangan-%s-%s.json", p, now.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, report.BuildDocument(records, p, now))
}

// ExportCSV returns the tabular export for a named period.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	records, _, err := h.periodRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := report.CSV(records)
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return
	}

	filename := fmt.Sprintf("transaksi-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}
