package db_models

type DiscountCode struct {
	BaseModel
	Code       string           `gorm:"unique"`
	Type       RegistrationType // the tier this code discounts
	Percentage int64

	Registrations []Registration `gorm:"foreignKey:DiscountCodeID"`
}
