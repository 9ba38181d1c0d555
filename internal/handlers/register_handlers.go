package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/openvtt/shopledger/internal/core/domain"
	portssvc "github.com/openvtt/shopledger/internal/core/ports/services"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	registerCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerLedgerRoutes(v1, services.Ledger)
	registerPricingRoutes(v1, services.Pricing)
	registerTradeRoutes(v1, services.Trade)
}

// registerCustomValidators wires the binding validators used by request DTOs.
// The "denom" tag accepts only symbols present in the denomination table.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("denom", func(fl validator.FieldLevel) bool {
		return domain.IsValidDenomination(domain.Denomination(fl.Field().String()))
	})
}
