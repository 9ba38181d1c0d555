package services

import (
	portsrepo "github.com/openvtt/shopledger/internal/core/ports/repositories"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Pricing = NewPricingService(repos.PricingRepo)
	container.Trade = NewTradeService(container.Ledger, container.Pricing)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade  = (*ledgerService)(nil)
	_ portssvc.PricingSvcFacade = (*pricingService)(nil)
	_ portssvc.TradeSvcFacade   = (*tradeService)(nil)
)
