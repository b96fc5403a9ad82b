package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type AccommodationRepository interface {
	ListAll(ctx context.Context) ([]db_models.Accommodation, error)
	FindByID(ctx context.Context, id string) (*db_models.Accommodation, error)
	CountOccupants(ctx context.Context, accommodationID string) (int64, error)
}

type accommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) AccommodationRepository {
	return &accommodationRepository{
		db: db,
	}
}

func (a *accommodationRepository) ListAll(ctx context.Context) ([]db_models.Accommodation, error) {
	var accommodation []db_models.Accommodation
	err := a.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&accommodation).Error
	if err != nil {
		return nil, err
	}
	return accommodation, nil
}

func (a *accommodationRepository) FindByID(ctx context.Context, id string) (*db_models.Accommodation, error) {
	var accommodation db_models.Accommodation
	err := a.db.WithContext(ctx).First(&accommodation, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &accommodation, nil
}

func (a *accommodationRepository) CountOccupants(ctx context.Context, accommodationID string) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.Registration{}).
		Where("accommodation_id = ?", accommodationID).
		Count(&count).Error
	return count, err
}
