package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openvtt/shopledger/internal/apperrors"
	"github.com/openvtt/shopledger/internal/core/domain"
	portsrepo "github.com/openvtt/shopledger/internal/core/ports/repositories"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
	"github.com/openvtt/shopledger/internal/dto"
	"github.com/openvtt/shopledger/internal/middleware"
)

// pricingService manages the operator-configured multipliers and repair rates.
type pricingService struct {
	pricingRepo portsrepo.PricingRepositoryFacade
}

// NewPricingService creates a new pricing configuration service.
func NewPricingService(pricingRepo portsrepo.PricingRepositoryFacade) portssvc.PricingSvcFacade {
	return &pricingService{pricingRepo: pricingRepo}
}

// Ensure pricingService implements the portssvc.PricingSvcFacade interface
var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// GetPricingConfig implements portssvc.PricingReaderSvc
func (s *pricingService) GetPricingConfig(ctx context.Context) (*domain.PricingConfig, error) {
	config, err := s.pricingRepo.FindPricingConfig(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			defaults := domain.DefaultPricingConfig()
			return &defaults, nil
		}
		return nil, fmt.Errorf("failed to load pricing config: %w", err)
	}
	return config, nil
}

// UpdatePricingConfig implements portssvc.PricingWriterSvc
func (s *pricingService) UpdatePricingConfig(ctx context.Context, req dto.UpdatePricingConfigRequest, updaterID string) (*domain.PricingConfig, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now().UTC()

	config := domain.PricingConfig{
		SellOrdinaryMultiplier: req.SellOrdinaryMultiplier,
		SellMagicMultiplier:    req.SellMagicMultiplier,
		BuyOrdinaryMultiplier:  req.BuyOrdinaryMultiplier,
		BuyMagicMultiplier:     req.BuyMagicMultiplier,
		BuyTreasureMultiplier:  req.BuyTreasureMultiplier,
		RepairMetalPerPoint:    req.RepairMetalPerPoint,
		RepairLeatherPerPoint:  req.RepairLeatherPerPoint,
		RepairOtherPerPoint:    req.RepairOtherPerPoint,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterID,
		},
	}

	if !config.Valid() {
		return nil, fmt.Errorf("%w: multipliers and repair rates must be non-negative", apperrors.ErrValidation)
	}

	if err := s.pricingRepo.SavePricingConfig(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save pricing config: %w", err)
	}

	logger.Info("Pricing config updated", slog.String("updated_by", updaterID))
	return &config, nil
}
