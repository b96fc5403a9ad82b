package registration_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"confreg/internal/repositories"
	"confreg/internal/services"
)

var Module = fx.Provide(
	provideRegistrationRepo, provideDiscountRepo, provideRegistrationService)

func provideRegistrationRepo(db *gorm.DB) repositories.RegistrationRepository {
	return repositories.NewRegistrationRepository(db)
}

func provideDiscountRepo(db *gorm.DB) repositories.DiscountRepository {
	return repositories.NewDiscountRepository(db)
}

func provideRegistrationService(
	personRepo repositories.PersonRepository,
	registrationRepo repositories.RegistrationRepository,
	discountRepo repositories.DiscountRepository,
	accommodationRepo repositories.AccommodationRepository,
	pricing services.PricingService,
	mailService services.IMailService,
	logger *zap.Logger,
) services.RegistrationServiceInterface {
	return services.NewRegistrationService(
		personRepo, registrationRepo, discountRepo, accommodationRepo,
		pricing, mailService, logger)
}
