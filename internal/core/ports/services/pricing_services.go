package services

import (
	"context"

	"github.com/openvtt/shopledger/internal/core/domain"
	"github.com/openvtt/shopledger/internal/dto"
)

// PricingReaderSvc defines read operations for pricing configuration
type PricingReaderSvc interface {
	// GetPricingConfig returns the stored configuration, or the documented
	// defaults if the operator has never saved one.
	GetPricingConfig(ctx context.Context) (*domain.PricingConfig, error)
}

// PricingWriterSvc defines write operations for pricing configuration
type PricingWriterSvc interface {
	// UpdatePricingConfig validates and persists new pricing values.
	UpdatePricingConfig(ctx context.Context, req dto.UpdatePricingConfigRequest, updaterID string) (*domain.PricingConfig, error)
}

// PricingSvcFacade combines all pricing-related service interfaces
type PricingSvcFacade interface {
	PricingReaderSvc
	PricingWriterSvc
}
