package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/dto"
	"github.com/openvtt/shopledger/internal/middleware"
)

// tradeHandler handles HTTP requests for shop transactions.
type tradeHandler struct {
	tradeService portssvc.TradeSvcFacade
}

// newTradeHandler creates a new tradeHandler.
func newTradeHandler(ts portssvc.TradeSvcFacade) *tradeHandler {
	return &tradeHandler{
		tradeService: ts,
	}
}

// registerTradeRoutes registers routes for shop transaction flows.
func registerTradeRoutes(rg *gin.RouterGroup, tradeService portssvc.TradeSvcFacade) {
	h := newTradeHandler(tradeService)

	trades := rg.Group("/trades")
	{
		trades.POST("/purchase", h.purchase)
		trades.POST("/sell", h.sell)
		trades.POST("/repair", h.repair)
		trades.POST("/service", h.useService)
	}
}

// purchase charges a customer for shop stock.
func (h *tradeHandler) purchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Purchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.tradeService.Purchase(c.Request.Context(), req)
	if err != nil {
		respondSettlementError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// sell pays a customer for an item the shop buys from them.
func (h *tradeHandler) sell(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Sell", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.tradeService.Sell(c.Request.Context(), req)
	if err != nil {
		respondSettlementError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// repair charges a customer for repairing an item by material and damage.
func (h *tradeHandler) repair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RepairRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Repair", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.tradeService.Repair(c.Request.Context(), req)
	if err != nil {
		respondSettlementError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// useService charges a customer a flat service fee.
func (h *tradeHandler) useService(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UseServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UseService", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.tradeService.UseService(c.Request.Context(), req)
	if err != nil {
		respondSettlementError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
