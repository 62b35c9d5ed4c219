package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/curex-labs/currency_exchange_app/internal/adapters/fxapi"
	"github.com/curex-labs/currency_exchange_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondFXError maps core failures to transport status codes: rate lookups
// that miss are 404, bad input is 400, upstream trouble is 502, the rest 500.
func respondFXError(c *gin.Context, logger *slog.Logger, err error) {
	var httpErr *fxapi.UpstreamHTTPError
	var formatErr *fxapi.UpstreamFormatError

	switch {
	case errors.Is(err, apperrors.ErrRateNotFound):
		logger.Warn("Rate not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrTypeConversion):
		logger.Warn("Invalid conversion input", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.As(err, &httpErr):
		logger.Error("FX upstream HTTP error",
			slog.Int("upstream_status", httpErr.StatusCode),
			slog.String("url", httpErr.URL),
		)
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "FX provider unavailable"})
	case errors.As(err, &formatErr):
		logger.Error("FX upstream format error", slog.String("url", formatErr.URL))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "FX provider returned an invalid response"})
	default:
		logger.Error("Unexpected error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
