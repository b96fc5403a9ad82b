package accommodation_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"confreg/internal/repositories"
	"confreg/internal/services"
)

var Module = fx.Provide(
	provideAccommodationRepo, provideAccommodationService)

func provideAccommodationRepo(db *gorm.DB) repositories.AccommodationRepository {
	return repositories.NewAccommodationRepository(db)
}

func provideAccommodationService(
	accommodationRepo repositories.AccommodationRepository,
	personRepo repositories.PersonRepository,
) services.AccommodationServiceInterface {
	return services.NewAccommodationService(accommodationRepo, personRepo)
}
