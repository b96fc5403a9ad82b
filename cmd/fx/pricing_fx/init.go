package pricing_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"confreg/internal/repositories"
	"confreg/internal/services"
)

var Module = fx.Provide(
	providePricingService)

func providePricingService(
	registrationRepo repositories.RegistrationRepository,
	invoiceRepo repositories.InvoiceRepository,
	logger *zap.Logger,
) services.PricingService {
	return services.NewPricingService(
		registrationRepo, invoiceRepo, services.PricingConfigFromEnv(), logger)
}
