package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/saiharsha-plivo/money-manager/internal/core/ports/services"
	"github.com/saiharsha-plivo/money-manager/internal/dto"
	"github.com/saiharsha-plivo/money-manager/internal/middleware"
)

// recordHandler handles HTTP requests related to records.
type recordHandler struct {
	recordService portssvc.RecordSvcFacade
}

func newRecordHandler(rs portssvc.RecordSvcFacade) *recordHandler {
	return &recordHandler{recordService: rs}
}

// registerRecordRoutes registers record routes nested under accounts.
func registerRecordRoutes(rg *gin.RouterGroup, recordService portssvc.RecordSvcFacade) {
	h := newRecordHandler(recordService)

	records := rg.Group("/accounts/:accountID/records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.DELETE("/:recordID", h.deleteRecord)
	}
}

// listRecords godoc
// @Summary List records
// @Description Lists all records in an account the logged-in user owns, newest first
// @Tags records
// @Produce json
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/records [get]
func (h *recordHandler) listRecords(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), principal, c.Param("accountID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list records")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(records))
}

// createRecord godoc
// @Summary Create a record
// @Description Adds an income or expense record to an account the logged-in user owns
// @Tags records
// @Accept json
// @Produce json
// @Param accountID path string true "Account ID"
// @Param record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.RecordResponse
// @Failure 400 {object} ErrorResponse "Unknown type or currency"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/records [post]
func (h *recordHandler) createRecord(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	record, err := h.recordService.CreateRecord(c.Request.Context(), principal, c.Param("accountID"), req)
	if err != nil {
		respondServiceError(c, err, "Failed to create record")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRecordResponse(record))
}

// deleteRecord godoc
// @Summary Delete a record
// @Description Deletes a record from an account the logged-in user owns, along with its comments
// @Tags records
// @Produce json
// @Param accountID path string true "Account ID"
// @Param recordID path string true "Record ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts/{accountID}/records/{recordID} [delete]
func (h *recordHandler) deleteRecord(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.recordService.DeleteRecord(c.Request.Context(), principal, c.Param("accountID"), c.Param("recordID")); err != nil {
		respondServiceError(c, err, "Failed to delete record")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Record deleted"})
}
