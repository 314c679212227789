package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoiceflow/backend/internal/apperrors"
	"github.com/invoiceflow/backend/internal/core/domain"
	portssvc "github.com/invoiceflow/backend/internal/core/ports/services"
	"github.com/invoiceflow/backend/internal/dto"
	"github.com/invoiceflow/backend/internal/middleware"
)

// reportingHandler serves the dashboard and the derived reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers the dashboard and report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rg.GET("/dashboard", h.getDashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/financial", h.getFinancialReport)
		reports.GET("/cashflow", h.getCashflow)
	}
}

// getDashboard godoc
// @Summary Get the dashboard
// @Description Returns headline metrics with month-over-month changes, recent documents, recent activities, top clients and expenses by category.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build dashboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}

// getFinancialReport godoc
// @Summary Get the financial report
// @Description Summarizes revenue, expenses and document counts since the start of the current calendar month, quarter or year.
// @Tags reports
// @Produce json
// @Param period query string false "Report period: month, quarter or year" default(month)
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} ErrorResponse "Unknown period"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/financial [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	period := domain.ReportPeriod(c.DefaultQuery("period", string(domain.PeriodMonth)))

	report, err := h.reportingService.FinancialReport(c.Request.Context(), userID, period, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build financial report", slog.String("error", err.Error()), slog.String("period", string(period)))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build financial report"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// getCashflow godoc
// @Summary Get the cash-flow series
// @Description Returns the trailing twelve calendar months of income, expenses and balance, oldest first. Months without movement are zero-filled.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.CashflowResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/cashflow [get]
func (h *reportingHandler) getCashflow(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	months, err := h.reportingService.Cashflow(c.Request.Context(), userID, time.Now().UTC())
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to build cashflow", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build cashflow"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashflowResponse(months))
}
