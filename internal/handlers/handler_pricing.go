package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openvtt/shopledger/internal/apperrors"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/dto"
	"github.com/openvtt/shopledger/internal/middleware"
)

// pricingHandler handles HTTP requests for the operator pricing configuration.
type pricingHandler struct {
	pricingService portssvc.PricingSvcFacade
}

// newPricingHandler creates a new pricingHandler.
func newPricingHandler(ps portssvc.PricingSvcFacade) *pricingHandler {
	return &pricingHandler{
		pricingService: ps,
	}
}

// registerPricingRoutes registers routes related to pricing configuration.
func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvcFacade) {
	h := newPricingHandler(pricingService)

	pricing := rg.Group("/pricing")
	{
		pricing.GET("", h.getPricingConfig)
		pricing.PUT("", h.updatePricingConfig)
	}
}

// getPricingConfig returns the effective pricing configuration: the stored
// values, or the documented defaults if none were ever saved.
func (h *pricingHandler) getPricingConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	config, err := h.pricingService.GetPricingConfig(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get pricing config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve pricing configuration"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPricingConfigResponse(config))
}

// updatePricingConfig replaces the pricing configuration.
func (h *pricingHandler) updatePricingConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdatePricingConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdatePricingConfig", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterID := c.GetHeader("X-Operator-ID")
	if updaterID == "" {
		updaterID = "operator"
	}

	config, err := h.pricingService.UpdatePricingConfig(c.Request.Context(), req, updaterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update pricing config", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pricing configuration"})
		return
	}

	logger.Info("Pricing config updated", slog.String("updated_by", updaterID))
	c.JSON(http.StatusOK, dto.ToPricingConfigResponse(config))
}
