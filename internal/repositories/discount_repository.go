package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type DiscountRepository interface {
	FindByCode(ctx context.Context, code string) (*db_models.DiscountCode, error)
}

type discountRepository struct {
	db *gorm.DB
}

func NewDiscountRepository(db *gorm.DB) DiscountRepository {
	return &discountRepository{
		db: db,
	}
}

func (d *discountRepository) FindByCode(ctx context.Context, code string) (*db_models.DiscountCode, error) {
	var discount db_models.DiscountCode
	err := d.db.WithContext(ctx).
		Preload("Registrations").
		First(&discount, "code = ?", code).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &discount, nil
}
