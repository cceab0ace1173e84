package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/procedure_control_app/internal/core/ports/services"
	"github.com/SscSPs/procedure_control_app/internal/dto"
	"github.com/SscSPs/procedure_control_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// procedureHandler handles HTTP requests related to procedure records.
type procedureHandler struct {
	procedureService portssvc.ProcedureSvcFacade
}

// newProcedureHandler creates a new procedureHandler.
func newProcedureHandler(ps portssvc.ProcedureSvcFacade) *procedureHandler {
	return &procedureHandler{procedureService: ps}
}

// registerProcedureRoutes registers all procedure-related routes.
func registerProcedureRoutes(rg *gin.RouterGroup, procedureService portssvc.ProcedureSvcFacade) {
	h := newProcedureHandler(procedureService)

	procedures := rg.Group("/procedures")
	{
		procedures.GET("", h.listProcedures)
		procedures.GET("/options", h.getOptions)
		procedures.GET("/:id", h.getProcedure)
		procedures.POST("", h.createProcedure)
		procedures.PUT("/:id", h.updateProcedure)
		procedures.DELETE("/:id", h.deleteProcedure)
	}
}

// listProcedures godoc
// @Summary List procedure records
// @Description Returns the records matching the filter query parameters, in insertion order.
// @Tags procedures
// @Produce json
// @Param keyword query string false "Substring match over procedure name, region, UF and hospital unit"
// @Param startDate query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Param region query string false "Exact region match"
// @Param state query string false "Exact UF match"
// @Success 200 {object} dto.ListProceduresResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /procedures [get]
func (h *procedureHandler) listProcedures(c *gin.Context) {
	var params dto.ListProceduresParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid filter parameters: " + err.Error()})
		return
	}

	procedures, err := h.procedureService.ListProcedures(c.Request.Context(), params.ToCriteria())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListProceduresResponse(procedures))
}

// getOptions godoc
// @Summary Filter dropdown catalogs
// @Description Returns the region and UF catalogs plus the distinct hospital units, procedure names and registering accounts present in the stored records.
// @Tags procedures
// @Produce json
// @Success 200 {object} dto.ProcedureOptionsResponse
// @Security BearerAuth
// @Router /procedures/options [get]
func (h *procedureHandler) getOptions(c *gin.Context) {
	options, err := h.procedureService.GetProcedureOptions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ProcedureOptionsResponse{
		Regions:        options.Regions,
		States:         options.States,
		HospitalUnits:  options.HospitalUnits,
		ProcedureNames: options.ProcedureNames,
		Creators:       options.Creators,
	})
}

// getProcedure godoc
// @Summary Get a procedure record
// @Tags procedures
// @Produce json
// @Param id path string true "Procedure ID"
// @Success 200 {object} dto.ProcedureResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /procedures/{id} [get]
func (h *procedureHandler) getProcedure(c *gin.Context) {
	procedure, err := h.procedureService.GetProcedureByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProcedureResponse(procedure))
}

// createProcedure godoc
// @Summary Register a procedure record
// @Description Validates and stores a new record. Only admin and billing accounts may set the billed/paid flags.
// @Tags procedures
// @Accept json
// @Produce json
// @Param procedure body dto.SaveProcedureRequest true "Record fields"
// @Success 201 {object} dto.ProcedureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /procedures [post]
func (h *procedureHandler) createProcedure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SaveProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	created, err := h.procedureService.CreateProcedure(c.Request.Context(), req, actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("Procedure record registered", slog.String("procedure_id", created.ProcedureID))
	c.JSON(http.StatusCreated, dto.ToProcedureResponse(created))
}

// updateProcedure godoc
// @Summary Update a procedure record
// @Description Validates and overwrites an existing record. Only admin and billing accounts may change the billed/paid flags.
// @Tags procedures
// @Accept json
// @Produce json
// @Param id path string true "Procedure ID"
// @Param procedure body dto.SaveProcedureRequest true "Record fields"
// @Success 200 {object} dto.ProcedureResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} dto.ValidationErrorResponse
// @Security BearerAuth
// @Router /procedures/{id} [put]
func (h *procedureHandler) updateProcedure(c *gin.Context) {
	var req dto.SaveProcedureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updated, err := h.procedureService.UpdateProcedure(c.Request.Context(), c.Param("id"), req, actorUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProcedureResponse(updated))
}

// deleteProcedure godoc
// @Summary Delete a procedure record
// @Description Removes a record permanently. Deleting an absent ID still returns 204.
// @Tags procedures
// @Param id path string true "Procedure ID"
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /procedures/{id} [delete]
func (h *procedureHandler) deleteProcedure(c *gin.Context) {
	actorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.procedureService.DeleteProcedure(c.Request.Context(), c.Param("id"), actorUserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
