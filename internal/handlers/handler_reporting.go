package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the dashboard aggregation endpoints.
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
}

func newReportingHandler(rs portssvc.ReportingSvc) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers all reporting routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/regions", h.getRegionSeries)
		reports.GET("/daily", h.getDailySeries)
		reports.GET("/monthly", h.getMonthlySeries)
	}
}

// getSummary godoc
// @Summary Dashboard totals
// @Description Returns the six dashboard tile totals over the filtered records.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return
	}

	totals, err := h.reportingService.DashboardSummary(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(*totals))
}

// getRegionSeries godoc
// @Summary Per-region value totals
// @Description Returns region totals in order of first appearance in the filtered records.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.RegionSeriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/regions [get]
func (h *reportingHandler) getRegionSeries(c *gin.Context) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.RegionSeries(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToRegionSeriesResponse(rows))
}

// getDailySeries godoc
// @Summary Paid value per day
// @Description Returns paid-value totals per procedure date, ascending.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.DailySeriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/daily [get]
func (h *reportingHandler) getDailySeries(c *gin.Context) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.DailySeries(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDailySeriesResponse(rows))
}

// getMonthlySeries godoc
// @Summary Paid value per month
// @Description Returns paid-value totals per YYYY-MM month, ascending.
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlySeriesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportingHandler) getMonthlySeries(c *gin.Context) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return
	}

	rows, err := h.reportingService.MonthlySeries(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToMonthlySeriesResponse(rows))
}
