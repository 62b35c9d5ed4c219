package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/dto"
	"github.com/curex-labs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// conversionHandler handles conversions and the per-user history.
type conversionHandler struct {
	recordService portssvc.ConversionRecordSvcFacade
}

func newConversionHandler(cs portssvc.ConversionRecordSvcFacade) *conversionHandler {
	return &conversionHandler{recordService: cs}
}

// registerConversionRoutes registers the conversion and history routes.
// Conversion allows anonymous callers; history requires a session.
func registerConversionRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newConversionHandler(services.Records)

	rg.POST("/convert", middleware.OptionalSessionAuthMiddleware(services.Auth), h.convert)

	records := rg.Group("/records", middleware.SessionAuthMiddleware(services.Auth))
	{
		records.GET("", h.listRecords)
		records.DELETE("/:recordID", h.deleteRecord)
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Converts amount from base to target at the current rate, rounded to 4 decimal places. Authenticated conversions are recorded.
// @Tags conversions
// @Accept json
// @Produce json
// @Param conversion body dto.ConvertRequest true "Conversion details"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate for the pair"
// @Failure 502 {object} ErrorResponse "FX provider unavailable"
// @Security BearerAuth
// @Router /convert [post]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for convert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	// Empty when the caller is anonymous; the conversion still runs, it is
	// just not recorded.
	userID, _ := middleware.GetUserIDFromContext(c)

	logger = logger.With(
		slog.String("base", req.BaseCurrency),
		slog.String("target", req.TargetCurrency),
	)
	logger.Info("Received conversion request")

	record, err := h.recordService.ConvertAndRecord(c.Request.Context(), userID, req.BaseCurrency, req.TargetCurrency, req.Amount)
	if err != nil {
		respondFXError(c, logger, err)
		return
	}

	logger.Info("Conversion completed", slog.String("record_id", record.RecordID))
	c.JSON(http.StatusOK, dto.ToConversionResponse(record))
}

// listRecords godoc
// @Summary List conversion history
// @Description Returns the authenticated user's conversion records, newest first
// @Tags conversions
// @Produce json
// @Success 200 {array} dto.ConversionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /records [get]
func (h *conversionHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	records, err := h.recordService.ListRecords(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list records"})
		return
	}

	logger.Info("Records listed", slog.Int("count", len(records)))
	c.JSON(http.StatusOK, dto.ToListConversionResponse(records))
}

// deleteRecord godoc
// @Summary Delete a conversion record
// @Description Deletes one of the authenticated user's conversion records
// @Tags conversions
// @Produce json
// @Param recordID path string true "Record ID"
// @Success 204 "Record deleted"
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /records/{recordID} [delete]
func (h *conversionHandler) deleteRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	recordID := c.Param("recordID")
	logger = logger.With(slog.String("record_id", recordID))

	if err := h.recordService.DeleteRecord(c.Request.Context(), recordID, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Record not found for delete")
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Record not found"})
		} else {
			logger.Error("Failed to delete record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete record"})
		}
		return
	}

	logger.Info("Record deleted")
	c.Status(http.StatusNoContent)
}
