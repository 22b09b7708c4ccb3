package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/dafibh/lendbook/lendbook-backend/internal/service"
	"github.com/dafibh/lendbook/lendbook-backend/internal/util"
	"github.com/labstack/echo/v4"
)

// ReportHandler serves the read-only ledger reports
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetMonthlyReport handles GET /api/v1/monthly-report
// @Summary Interest collection report for one month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Param includeClosed query bool false "Include closed loans"
// @Success 200 {object} domain.MonthlyReport
// @Failure 400 {object} ProblemDetails
// @Router /monthly-report [get]
func (h *ReportHandler) GetMonthlyReport(c echo.Context) error {
	month, err := periodQuery(c, "month")
	if err != nil {
		return respondError(c, err, "build monthly report")
	}
	includeClosed := false
	if raw := c.QueryParam("includeClosed"); raw != "" {
		includeClosed, err = strconv.ParseBool(raw)
		if err != nil {
			return fieldError(c, "includeClosed", "includeClosed must be true or false")
		}
	}

	report, err := h.reportService.MonthlyReport(c.Request().Context(), month, includeClosed)
	if err != nil {
		return respondError(c, err, "build monthly report")
	}
	return c.JSON(http.StatusOK, report)
}

// GetPersonHistory handles GET /api/v1/person-history/:name
// @Summary Every loan of a borrower with its payments
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param name path string true "Borrower name"
// @Success 200 {array} domain.PersonHistoryEntry
// @Failure 404 {object} ProblemDetails
// @Router /person-history/{name} [get]
func (h *ReportHandler) GetPersonHistory(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return fieldError(c, "name", "Invalid borrower name")
	}
	history, err := h.reportService.PersonHistory(c.Request().Context(), name)
	if err != nil {
		return respondError(c, err, "load person history")
	}
	return c.JSON(http.StatusOK, history)
}

// GetRecentPayments handles GET /api/v1/recent-payments
// @Summary Payments of the last few interest months
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param months query int false "Window in months (1-120, default 3)"
// @Success 200 {array} domain.RecentPaymentsMonth
// @Failure 400 {object} ProblemDetails
// @Router /recent-payments [get]
func (h *ReportHandler) GetRecentPayments(c echo.Context) error {
	months := 0
	if raw := c.QueryParam("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fieldError(c, "months", "months must be a number")
		}
		if n == 0 {
			n = -1 // an explicit zero is out of range, not "use the default"
		}
		months = n
	}

	groups, err := h.reportService.RecentPayments(c.Request().Context(), months, util.Today())
	if err != nil {
		return respondError(c, err, "list recent payments")
	}
	return c.JSON(http.StatusOK, groups)
}

// GetLoanSummary handles GET /api/v1/loans/summary
// @Summary Totals over the active book
// @Tags loans
// @Produce json
// @Security BearerAuth
// @Param month query string false "YYYY-MM, defaults to the current month"
// @Success 200 {object} domain.LoanSummary
// @Router /loans/summary [get]
func (h *ReportHandler) GetLoanSummary(c echo.Context) error {
	month, err := periodQuery(c, "month")
	if err != nil {
		return respondError(c, err, "build loan summary")
	}
	summary, err := h.reportService.LoanSummary(c.Request().Context(), month)
	if err != nil {
		return respondError(c, err, "build loan summary")
	}
	return c.JSON(http.StatusOK, summary)
}
