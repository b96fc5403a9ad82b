package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"confreg/cmd/fx/accommodation_fx"
	"confreg/cmd/fx/account_fx"
	"confreg/cmd/fx/controllers_fx"
	"confreg/cmd/fx/db_fx"
	"confreg/cmd/fx/invoice_fx"
	"confreg/cmd/fx/mail_fx"
	"confreg/cmd/fx/memcache_fx"
	"confreg/cmd/fx/pricing_fx"
	"confreg/cmd/fx/product_fx"
	"confreg/cmd/fx/registration_fx"
	"confreg/internal/api/controllers"
	"confreg/internal/infra"
	"confreg/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	app := fx.New(
		fx.Provide(zap.NewProduction),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		accommodation_fx.Module,
		registration_fx.Module,
		pricing_fx.Module,
		invoice_fx.Module,
		product_fx.Module,
		controllers_fx.Module,

		fx.Invoke(migrate),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func migrate(db *gorm.DB) {
	if err := infra.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	registrationController *controllers.RegistrationController,
	invoiceController *controllers.InvoiceController,
	accommodationController *controllers.AccommodationController,
	productController *controllers.ProductController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, registrationController,
		invoiceController, accommodationController, productController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	registrationController *controllers.RegistrationController,
	invoiceController *controllers.InvoiceController,
	accommodationController *controllers.AccommodationController,
	productController *controllers.ProductController) {

	accounts := r.Group("/accounts")
	accounts.POST("/register", accountController.Register)
	accounts.POST("/login", accountController.Login)
	accounts.POST("/forgot-password", accountController.ForgotPassword)
	accounts.POST("/reset-password", accountController.ResetPassword)

	registrations := r.Group("/registrations")
	registrations.GET("/status", registrationController.Status)
	registrations.POST("", middleware.OptionalJWTMiddleware(), registrationController.New)
	registrations.PUT("/:id", middleware.JWTAuthMiddleware(), registrationController.Edit)
	registrations.POST("/:id/pay", middleware.JWTAuthMiddleware(), registrationController.Pay)

	organiser := registrations.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("organiser"))
	organiser.GET("", registrationController.List)
	organiser.POST("/remind", registrationController.Remind)

	invoices := r.Group("/invoices", middleware.JWTAuthMiddleware())
	invoices.GET("/:id", invoiceController.View)
	invoices.POST("/:id/payments", middleware.RoleMiddleware("organiser"), invoiceController.RecordPayment)

	r.GET("/accommodation", middleware.OptionalJWTMiddleware(), accommodationController.List)

	r.GET("/products", productController.Catalog)
	products := r.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("organiser"))
	products.GET("/products/all", productController.AdminList)
	products.GET("/products/:id", productController.View)
	products.POST("/products", productController.Create)
	products.PUT("/products/:id", productController.Update)
	products.DELETE("/products/:id", productController.Delete)
	products.POST("/product-categories", productController.CreateCategory)
}
