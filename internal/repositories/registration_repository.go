package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type RegistrationRepository interface {
	Insert(ctx context.Context, registration *db_models.Registration) error
	Update(ctx context.Context, registration *db_models.Registration) error
	FindByID(ctx context.Context, id string) (*db_models.Registration, error)
	FindByPersonID(ctx context.Context, personID string) (*db_models.Registration, error)
	// ListAll loads every registration with the person's proposals and
	// invoices attached; the early-bird counter scans the full table.
	ListAll(ctx context.Context) ([]db_models.Registration, error)
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

func (r *registrationRepository) Insert(ctx context.Context, registration *db_models.Registration) error {
	return r.db.WithContext(ctx).Create(registration).Error
}

func (r *registrationRepository) Update(ctx context.Context, registration *db_models.Registration) error {
	return r.db.WithContext(ctx).Save(registration).Error
}

func (r *registrationRepository) FindByID(ctx context.Context, id string) (*db_models.Registration, error) {
	var registration db_models.Registration
	err := r.fullyLoaded(ctx).First(&registration, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &registration, nil
}

func (r *registrationRepository) FindByPersonID(ctx context.Context, personID string) (*db_models.Registration, error) {
	var registration db_models.Registration
	err := r.fullyLoaded(ctx).First(&registration, "person_id = ?", personID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &registration, nil
}

func (r *registrationRepository) ListAll(ctx context.Context) ([]db_models.Registration, error) {
	var registrations []db_models.Registration
	err := r.fullyLoaded(ctx).
		Order("registrations.created_at ASC").
		Find(&registrations).Error
	if err != nil {
		return nil, err
	}
	return registrations, nil
}

func (r *registrationRepository) fullyLoaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Person.Proposals").
		Preload("Person.Invoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoices.created_at ASC")
		}).
		Preload("Person.Invoices.Items").
		Preload("Person.Invoices.Payments").
		Preload("Accommodation").
		Preload("Discount.Registrations")
}
