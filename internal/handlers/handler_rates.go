package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/curex-labs/currency_exchange_app/internal/core/ports/services"
	"github.com/curex-labs/currency_exchange_app/internal/dto"
	"github.com/curex-labs/currency_exchange_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles FX rate, currency-list and trend requests.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers the public FX data routes.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("/current", h.getCurrentRate)
		rates.GET("/trend", h.getTrend)
	}
	rg.GET("/currencies", h.listCurrencies)
}

// pairParams pulls the base/target query parameters; both are required.
func pairParams(c *gin.Context) (string, string, bool) {
	base := c.Query("base")
	target := c.Query("target")
	if base == "" || target == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameters 'base' and 'target' are required"})
		return "", "", false
	}
	return base, target, true
}

// getCurrentRate godoc
// @Summary Get the current exchange rate
// @Description Returns units of target currency per one unit of base currency
// @Tags rates
// @Produce json
// @Param base query string true "Base currency code (3 letters)"
// @Param target query string true "Target currency code (3 letters)"
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate for the pair"
// @Failure 502 {object} ErrorResponse "FX provider unavailable"
// @Router /rates/current [get]
func (h *rateHandler) getCurrentRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, target, ok := pairParams(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("base", base), slog.String("target", target))
	logger.Info("Received request for current rate")

	rate, err := h.rateService.CurrentRate(c.Request.Context(), base, target)
	if err != nil {
		respondFXError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		Base:   base,
		Target: target,
		Rate:   rate.String(),
		Date:   time.Now().UTC().Format("2006-01-02"),
	})
}

// getTrend godoc
// @Summary Classify the 30-day rate trend
// @Description Builds the 30-day rate series for the pair and classifies it as up, down or flat
// @Tags rates
// @Produce json
// @Param base query string true "Base currency code (3 letters)"
// @Param target query string true "Target currency code (3 letters)"
// @Success 200 {object} dto.TrendResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate for the pair"
// @Failure 502 {object} ErrorResponse "FX provider unavailable"
// @Router /rates/trend [get]
func (h *rateHandler) getTrend(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	base, target, ok := pairParams(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("base", base), slog.String("target", target))
	logger.Info("Received request for rate trend")

	series, err := h.rateService.MonthlySeries(c.Request.Context(), base, target)
	if err != nil {
		respondFXError(c, logger, err)
		return
	}

	trend := h.rateService.Trend(series)
	logger.Info("Trend classified", slog.String("trend", string(trend)))
	c.JSON(http.StatusOK, dto.ToTrendResponse(base, target, trend, series))
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the upstream-supported currency codes, sorted ascending
// @Tags rates
// @Produce json
// @Success 200 {array} string
// @Failure 502 {object} ErrorResponse "FX provider unavailable"
// @Router /currencies [get]
func (h *rateHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to list supported currencies")

	codes, err := h.rateService.SupportedCurrencies(c.Request.Context())
	if err != nil {
		respondFXError(c, logger, err)
		return
	}

	logger.Info("Supported currencies listed", slog.Int("count", len(codes)))
	c.JSON(http.StatusOK, codes)
}
