package repositories

import (
	"context"

	"github.com/openvtt/shopledger/internal/core/domain"
)

// PricingReader defines read operations for pricing configuration
type PricingReader interface {
	// FindPricingConfig retrieves the operator-configured pricing values.
	// Returns apperrors.ErrNotFound if no configuration has been saved yet.
	FindPricingConfig(ctx context.Context) (*domain.PricingConfig, error)
}

// PricingWriter defines write operations for pricing configuration
type PricingWriter interface {
	// SavePricingConfig persists the pricing configuration.
	SavePricingConfig(ctx context.Context, config domain.PricingConfig) error
}

// PricingRepositoryFacade combines all pricing-related repository interfaces
type PricingRepositoryFacade interface {
	PricingReader
	PricingWriter
}
