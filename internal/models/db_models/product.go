package db_models

import "github.com/google/uuid"

type ProductCategory struct {
	BaseModel
	Name         string `gorm:"unique"`
	DisplayOrder int

	Products []Product `gorm:"foreignKey:CategoryID"`
}

type Product struct {
	BaseModel
	CategoryID   uuid.UUID `gorm:"index"`
	Description  string
	Cost         int64 // cents
	DisplayOrder int
	Active       bool
	BadgeText    *string

	Category ProductCategory `gorm:"foreignKey:CategoryID"`
}
