package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ciic/internhub/internal/app/models/dto"
	"github.com/ciic/internhub/internal/app/services"
	"github.com/ciic/internhub/internal/middleware"
)

// ReportController handles the admin applications report and KPI dashboard
type ReportController struct {
	reportService    *services.ReportService
	dashboardService *services.DashboardService
}

// NewReportController creates a new ReportController
func NewReportController(reportService *services.ReportService, dashboardService *services.DashboardService) *ReportController {
	return &ReportController{
		reportService:    reportService,
		dashboardService: dashboardService,
	}
}

func (c *ReportController) parseFilter(ctx *gin.Context) (services.ReportFilter, bool) {
	filter := services.ReportFilter{
		Department: ctx.Query("department"),
	}

	if startupIDStr := ctx.Query("startupId"); startupIDStr != "" {
		startupID, err := strconv.ParseInt(startupIDStr, 10, 64)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid startup ID")
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
			return filter, false
		}
		filter.StartupID = startupID
	}

	var ok bool
	if filter.From, ok = parseTimeQuery(ctx, "from"); !ok {
		return filter, false
	}
	if filter.To, ok = parseTimeQuery(ctx, "to"); !ok {
		return filter, false
	}

	return filter, true
}

// GetReport retrieves the filtered applications report
// @Summary Applications report
// @Description Builds the applications report with AND-combined date, startup and department filters
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param from query string false "Applications created on or after (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Applications created on or before (RFC 3339 or YYYY-MM-DD)"
// @Param startupId query int false "Startup ID"
// @Param department query string false "Student department"
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse} "Report built successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/applications [get]
func (c *ReportController) GetReport(ctx *gin.Context) {
	filter, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	report, err := c.reportService.GetReport(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ExportReportCSV downloads the filtered report as CSV
// @Summary Download applications report CSV
// @Description Builds the filtered report and serves it as a CSV download
// @Tags reports
// @Accept json
// @Produce text/csv
// @Security BearerAuth
// @Param from query string false "Applications created on or after (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "Applications created on or before (RFC 3339 or YYYY-MM-DD)"
// @Param startupId query int false "Startup ID"
// @Param department query string false "Student department"
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter parameters"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports/applications/csv [get]
func (c *ReportController) ExportReportCSV(ctx *gin.Context) {
	filter, ok := c.parseFilter(ctx)
	if !ok {
		return
	}

	filename, data, err := c.reportService.ExportCSV(ctx, filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Data(http.StatusOK, "text/csv", data)
}

// GetDashboardKPIs retrieves the admin KPI snapshot
// @Summary Dashboard KPIs
// @Description Computes the point-in-time KPI snapshot with month-over-month change labels
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardKPIResponse} "KPIs computed successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /dashboard/kpis [get]
func (c *ReportController) GetDashboardKPIs(ctx *gin.Context) {
	kpis, err := c.dashboardService.GetKPIs(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      kpis,
		Timestamp: time.Now(),
	})
}
