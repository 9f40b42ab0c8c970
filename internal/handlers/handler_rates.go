package handlers

import (
	"net/http"

	portssvc "github.com/hsolorzn/finve_backend/internal/core/ports/services"
	"github.com/hsolorzn/finve_backend/internal/dto"
	"github.com/hsolorzn/finve_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// RegisterRateRoutes registers routes related to exchange rates.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)
	rg.GET("/rates", h.getRates)
}

// getRates godoc
// @Summary Get the current exchange-rate snapshot
// @Description Returns the cached snapshot, or a fallback snapshot when the live sources are unreachable
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateSnapshotResponse
// @Security BearerAuth
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot := h.rateService.GetRates(c.Request.Context())
	if snapshot.IsFallback {
		logger.Warn("Serving fallback rate snapshot")
	}

	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snapshot))
}
