package controllers_fx

import (
	"go.uber.org/fx"

	"confreg/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewRegistrationController),
	fx.Provide(controllers.NewInvoiceController),
	fx.Provide(controllers.NewAccommodationController),
	fx.Provide(controllers.NewProductController))
