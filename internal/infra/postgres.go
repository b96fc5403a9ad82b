package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

// Migrate keeps the schema in step with the models on startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Person{},
		&db_models.Proposal{},
		&db_models.Accommodation{},
		&db_models.DiscountCode{},
		&db_models.Registration{},
		&db_models.Invoice{},
		&db_models.InvoiceItem{},
		&db_models.Payment{},
		&db_models.ProductCategory{},
		&db_models.Product{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
