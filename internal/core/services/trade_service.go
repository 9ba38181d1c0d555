package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/dto"
	"github.com/openvtt/shopledger/internal/middleware"
	"github.com/openvtt/shopledger/internal/utils/coinage"
)

// tradeService composes the converter, the cost adjuster and the settlement
// service into the shop's transaction flows. It never touches storage itself;
// the ledger service owns persistence and per-owner serialization.
type tradeService struct {
	ledgerSvc  portssvc.LedgerSvcFacade
	pricingSvc portssvc.PricingReaderSvc
}

// NewTradeService creates a new trade service.
func NewTradeService(ledgerSvc portssvc.LedgerSvcFacade, pricingSvc portssvc.PricingReaderSvc) portssvc.TradeSvcFacade {
	return &tradeService{
		ledgerSvc:  ledgerSvc,
		pricingSvc: pricingSvc,
	}
}

// Ensure tradeService implements the portssvc.TradeSvcFacade interface
var _ portssvc.TradeSvcFacade = (*tradeService)(nil)

// settleTrade runs a signed settlement and assembles the trade result.
func (s *tradeService) settleTrade(ctx context.Context, customerID string, amount int64) (*dto.TradeResult, error) {
	ledger, err := s.ledgerSvc.Settle(ctx, customerID, amount)
	if err != nil {
		return nil, err
	}

	magnitude := amount
	if magnitude < 0 {
		magnitude = -magnitude
	}
	breakdown, err := domain.FromBaseUnits(magnitude)
	if err != nil {
		return nil, err
	}

	return &dto.TradeResult{
		TransactionID:     uuid.NewString(),
		AmountInBaseUnits: amount,
		AmountBreakdown:   breakdown,
		Ledger:            dto.ToLedgerResponse(ledger),
	}, nil
}

// Purchase implements portssvc.TradeSvcFacade
func (s *tradeService) Purchase(ctx context.Context, req dto.PurchaseRequest) (*dto.TradeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	config, err := s.pricingSvc.GetPricingConfig(ctx)
	if err != nil {
		return nil, err
	}

	baseCost, err := domain.ToBaseUnits(req.ListedCost, req.ListedDenomination)
	if err != nil {
		return nil, err
	}

	multiplier := config.SellMultiplier(req.Category)
	if multiplier.IsZero() {
		return nil, fmt.Errorf("%w: item is not for sale (zero multiplier)", apperrors.ErrValidation)
	}

	perItem, err := coinage.Adjust(baseCost, multiplier)
	if err != nil {
		return nil, err
	}
	total := perItem * req.Quantity

	logger.Info("Purchase priced",
		slog.String("customer_id", req.CustomerID),
		slog.Int64("base_cost", baseCost),
		slog.Int64("total", total),
		slog.Int64("quantity", req.Quantity))
	return s.settleTrade(ctx, req.CustomerID, total)
}

// Sell implements portssvc.TradeSvcFacade
func (s *tradeService) Sell(ctx context.Context, req dto.SellRequest) (*dto.TradeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	config, err := s.pricingSvc.GetPricingConfig(ctx)
	if err != nil {
		return nil, err
	}

	baseCost, err := domain.ToBaseUnits(req.ListedCost, req.ListedDenomination)
	if err != nil {
		return nil, err
	}

	multiplier := config.BuyMultiplier(req.Category)
	if multiplier.IsZero() {
		return nil, fmt.Errorf("%w: shop does not buy this item (zero multiplier)", apperrors.ErrValidation)
	}

	perItem, err := coinage.Adjust(baseCost, multiplier)
	if err != nil {
		return nil, err
	}
	if perItem == 0 {
		return nil, fmt.Errorf("%w: item has no buy value", apperrors.ErrValidation)
	}
	proceeds := perItem * req.Quantity

	logger.Info("Sale priced",
		slog.String("customer_id", req.CustomerID),
		slog.Int64("base_cost", baseCost),
		slog.Int64("proceeds", proceeds),
		slog.Int64("quantity", req.Quantity))
	// Negative settlement: the customer is paid.
	return s.settleTrade(ctx, req.CustomerID, -proceeds)
}

// Repair implements portssvc.TradeSvcFacade
func (s *tradeService) Repair(ctx context.Context, req dto.RepairRequest) (*dto.TradeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	config, err := s.pricingSvc.GetPricingConfig(ctx)
	if err != nil {
		return nil, err
	}
	if req.DamagePoints < 0 {
		return nil, fmt.Errorf("%w: damage points cannot be negative", apperrors.ErrValidation)
	}

	material := domain.NormalizeMaterial(req.Material)
	cost := config.RepairRatePerPoint(material) * req.DamagePoints

	logger.Info("Repair priced",
		slog.String("customer_id", req.CustomerID),
		slog.String("material", string(material)),
		slog.Int64("damage_points", req.DamagePoints),
		slog.Int64("cost", cost))
	return s.settleTrade(ctx, req.CustomerID, cost)
}

// UseService implements portssvc.TradeSvcFacade
func (s *tradeService) UseService(ctx context.Context, req dto.UseServiceRequest) (*dto.TradeResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.CostInBaseUnits < 0 {
		return nil, fmt.Errorf("%w: service cost cannot be negative", apperrors.ErrValidation)
	}

	logger.Info("Service use priced",
		slog.String("customer_id", req.CustomerID),
		slog.String("service", req.ServiceName),
		slog.Int64("cost", req.CostInBaseUnits))
	return s.settleTrade(ctx, req.CustomerID, req.CostInBaseUnits)
}
