package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/middleware"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
	exportService    portssvc.ExportSvc
	now              func() time.Time
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService, es portssvc.ExportSvc) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		exportService:    es,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// registerReportingRoutes registers routes related to financial reports and their exports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService, exportService portssvc.ExportSvc) {
	h := newReportingHandler(reportingService, exportService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/trial-balance", h.getTrialBalance)
		reportingGroup.GET("/profit-and-loss", h.getProfitAndLoss)
		reportingGroup.GET("/balance-sheet", h.getBalanceSheet)
		reportingGroup.GET("/cash-flow", h.getCashFlow)
		reportingGroup.GET("/general-ledger/:accountID", h.getGeneralLedger)
		reportingGroup.GET("/aging", h.getAging)
	}

	rg.GET("/exports/formats", h.listExportFormats)
	rg.GET("/exports/:kind", h.exportReport)
}

// getTrialBalance godoc
// @Summary Generate trial balance report
// @Description Per-account debit and credit totals over posted entries in the range
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD), empty for inception"
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Param includeZeroBalance query bool false "Include accounts with a zero balance"
// @Param accountType query []string false "Restrict to account types"
// @Param groupByType query bool false "Group rows by account type"
// @Success 200 {object} domain.TrialBalanceReport
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	var query dto.TrialBalanceQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}
	dateRange, err := query.ToDateRange(h.now())
	if err != nil {
		respondBadRequest(c, "Invalid date range", err)
		return
	}
	opts, err := query.ToOptions()
	if err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), dateRange, opts)
	if err != nil {
		respondWithError(c, err, "Failed to generate trial balance report")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if !report.Balanced {
		logger.Error("Trial balance does not balance",
			slog.String("total_debit", report.TotalDebit.String()),
			slog.String("total_credit", report.TotalCredit.String()))
	}
	logger.Info("Trial balance report generated", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, report)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD), empty for inception"
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.ProfitAndLossReport
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	dateRange, ok := h.bindRange(c)
	if !ok {
		return
	}
	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), dateRange)
	if err != nil {
		respondWithError(c, err, "Failed to generate profit and loss report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.BalanceSheetReport
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	asOf, ok := h.bindAsOf(c)
	if !ok {
		return
	}
	report, err := h.reportingService.BalanceSheet(c.Request.Context(), asOf)
	if err != nil {
		respondWithError(c, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getCashFlow godoc
// @Summary Generate cash flow statement
// @Description Direct-method movements of the designated cash accounts, grouped by source type
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD), empty for inception"
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.CashFlowReport
// @Failure 422 {object} ErrorResponse "No cash account configured"
// @Security BearerAuth
// @Router /reports/cash-flow [get]
func (h *reportingHandler) getCashFlow(c *gin.Context) {
	dateRange, ok := h.bindRange(c)
	if !ok {
		return
	}
	report, err := h.reportingService.CashFlow(c.Request.Context(), dateRange)
	if err != nil {
		respondWithError(c, err, "Failed to generate cash flow report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getGeneralLedger godoc
// @Summary Generate an account's general ledger
// @Tags reports
// @Produce json
// @Param accountID path string true "Account ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD), empty for inception"
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.GeneralLedgerReport
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /reports/general-ledger/{accountID} [get]
func (h *reportingHandler) getGeneralLedger(c *gin.Context) {
	dateRange, ok := h.bindRange(c)
	if !ok {
		return
	}
	report, err := h.reportingService.GeneralLedger(c.Request.Context(), c.Param("accountID"), dateRange)
	if err != nil {
		respondWithError(c, err, "Failed to generate general ledger")
		return
	}
	c.JSON(http.StatusOK, report)
}

// getAging godoc
// @Summary Generate an aging analysis
// @Tags reports
// @Produce json
// @Param kind query string false "receivables or payables" default(receivables)
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} domain.AgingReport
// @Failure 422 {object} ErrorResponse "Control account not configured"
// @Security BearerAuth
// @Router /reports/aging [get]
func (h *reportingHandler) getAging(c *gin.Context) {
	var query dto.AgingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}
	asOf, err := query.ToAsOf(h.now())
	if err != nil {
		respondBadRequest(c, "Invalid date", err)
		return
	}
	kind := domain.AgingKind(query.Kind)
	if kind == "" {
		kind = domain.Receivables
	}

	report, err := h.reportingService.AgingAnalysis(c.Request.Context(), kind, asOf)
	if err != nil {
		respondWithError(c, err, "Failed to generate aging report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// listExportFormats godoc
// @Summary List export formats
// @Tags exports
// @Produce json
// @Success 200 {object} map[string][]string
// @Security BearerAuth
// @Router /exports/formats [get]
func (h *reportingHandler) listExportFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": h.exportService.Formats()})
}

// exportReport godoc
// @Summary Export a report
// @Description Renders a report as a downloadable document. Accepts the report's own query parameters.
// @Tags exports
// @Produce octet-stream
// @Param kind path string true "trial-balance, profit-and-loss, balance-sheet, cash-flow, general-ledger or aging"
// @Param format query string false "Document format" default(csv)
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Param asOf query string false "As-of date (YYYY-MM-DD)"
// @Param accountID query string false "Account for the general ledger"
// @Param agingKind query string false "receivables or payables"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Unknown report or format"
// @Security BearerAuth
// @Router /exports/{kind} [get]
func (h *reportingHandler) exportReport(c *gin.Context) {
	var query dto.ExportReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return
	}
	req, err := query.ToExportRequest(domain.ReportKind(c.Param("kind")), h.now())
	if err != nil {
		respondBadRequest(c, "Invalid export request", err)
		return
	}

	doc, err := h.exportService.Export(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to export report")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Report exported",
		slog.String("kind", string(req.Kind)), slog.String("format", req.Format), slog.Int("bytes", len(doc.Body)))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Body)
}

func (h *reportingHandler) bindRange(c *gin.Context) (domain.DateRange, bool) {
	var query dto.ReportRangeQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return domain.DateRange{}, false
	}
	dateRange, err := query.ToDateRange(h.now())
	if err != nil {
		respondBadRequest(c, "Invalid date range", err)
		return domain.DateRange{}, false
	}
	return dateRange, true
}

func (h *reportingHandler) bindAsOf(c *gin.Context) (time.Time, bool) {
	var query dto.AsOfQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBadRequest(c, "Invalid query parameters", err)
		return time.Time{}, false
	}
	asOf, err := query.ToAsOf(h.now())
	if err != nil {
		respondBadRequest(c, "Invalid date", err)
		return time.Time{}, false
	}
	return asOf, true
}
