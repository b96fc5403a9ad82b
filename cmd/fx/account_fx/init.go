package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"confreg/internal/repositories"
	"confreg/internal/services"
	mem "confreg/pkg/memcache"
)

var Module = fx.Provide(
	provideAccountService, providePersonRepo)

func providePersonRepo(db *gorm.DB) repositories.PersonRepository {
	return repositories.NewPersonRepository(db)
}

func provideAccountService(
	personRepo repositories.PersonRepository,
	mailService services.IMailService,
	memcache mem.ResetTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(personRepo, mailService, memcache, logger)
}
