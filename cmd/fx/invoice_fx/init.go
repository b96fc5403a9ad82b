package invoice_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"confreg/internal/repositories"
	"confreg/internal/services"
)

var Module = fx.Provide(
	provideInvoiceRepo, provideInvoiceService)

func provideInvoiceRepo(db *gorm.DB) repositories.InvoiceRepository {
	return repositories.NewInvoiceRepository(db)
}

func provideInvoiceService(invoiceRepo repositories.InvoiceRepository, logger *zap.Logger) services.InvoiceServiceInterface {
	return services.NewInvoiceService(invoiceRepo, logger)
}
