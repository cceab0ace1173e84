package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/SscSPs/procedure_control_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exportHandler handles the report download endpoints.
type exportHandler struct {
	exportService portssvc.ExportSvc
}

func newExportHandler(es portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: es}
}

// registerExportRoutes registers all export routes.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	{
		exports.GET("/csv", h.exportCSV)
		exports.GET("/spreadsheet", h.exportSpreadsheet)
		exports.GET("/pdf", h.exportPDF)
	}
}

func (h *exportHandler) bindCriteria(c *gin.Context) (dto.ListProceduresParams, bool) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return params, false
	}
	return params, true
}

func sendAttachment(c *gin.Context, filename, contentType string, payload []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, payload)
}

// exportCSV godoc
// @Summary Download the filtered records as CSV
// @Description Comma-delimited UTF-8 with a BOM prefix, same filter parameters as the list endpoint.
// @Tags exports
// @Produce text/csv
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/csv [get]
func (h *exportHandler) exportCSV(c *gin.Context) {
	params, ok := h.bindCriteria(c)
	if !ok {
		return
	}
	payload, err := h.exportService.ExportCSV(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, portssvc.CSVExportFilename, "text/csv; charset=utf-8", payload)
}

// exportSpreadsheet godoc
// @Summary Download the filtered records as a spreadsheet
// @Description Semicolon-delimited with decimal-comma values for pt-BR Excel.
// @Tags exports
// @Produce application/vnd.ms-excel
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/spreadsheet [get]
func (h *exportHandler) exportSpreadsheet(c *gin.Context) {
	params, ok := h.bindCriteria(c)
	if !ok {
		return
	}
	payload, err := h.exportService.ExportSpreadsheet(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, portssvc.SpreadsheetExportFilename, "application/vnd.ms-excel", payload)
}

// exportPDF godoc
// @Summary Download the filtered records as a PDF report
// @Description Landscape report with the record table, totals row and general summary.
// @Tags exports
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /exports/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	params, ok := h.bindCriteria(c)
	if !ok {
		return
	}
	actorUserID, _ := middleware.GetUserIDFromContext(c)
	payload, err := h.exportService.ExportPDF(c.Request.Context(), params.ToCriteria(), actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, portssvc.PDFExportFilename, "application/pdf", payload)
}
