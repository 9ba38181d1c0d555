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

// ledgerHandler handles HTTP requests related to coin ledgers.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerLedgerRoutes registers routes related to ledgers.
func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)

	ledgers := rg.Group("/ledgers")
	{
		ledgers.GET("/:ownerID", h.getLedger)
		ledgers.POST("/:ownerID/settle", h.settle)
	}
}

// getLedger returns the coin holding of one owner. Owners that have never held
// currency get an empty holding.
func (h *ledgerHandler) getLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	ledger, err := h.ledgerService.GetLedger(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get ledger", slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ledger"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// settle applies a signed base-unit amount directly to an owner's ledger.
// Positive amounts charge the owner, negative amounts grant funds (refunds,
// GM adjustments).
func (h *ledgerHandler) settle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ownerID := c.Param("ownerID")

	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Settle", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	ledger, err := h.ledgerService.Settle(c.Request.Context(), ownerID, req.AmountInBaseUnits)
	if err != nil {
		respondSettlementError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLedgerResponse(ledger))
}

// respondSettlementError maps settlement errors onto HTTP statuses. Expected
// rejections (validation, insufficient funds) surface to the caller for
// user-facing messaging; an internal inconsistency is a bug and is reported as
// a server error, distinctly logged.
func respondSettlementError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrInvalidDenomination),
		errors.Is(err, apperrors.ErrNegativeAmount),
		errors.Is(err, apperrors.ErrInvalidArgument):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInternalInconsistency):
		logger.Error("Settlement internal inconsistency", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement aborted, ledger unchanged"})
	default:
		logger.Error("Settlement failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Settlement failed"})
	}
}
