package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"confreg/internal/models/db_models"
)

type PersonRepository interface {
	Insert(ctx context.Context, person *db_models.Person) error
	Update(ctx context.Context, person *db_models.Person) error
	FindByID(ctx context.Context, id string) (*db_models.Person, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Person, error)
	FindByHandle(ctx context.Context, handle string) (*db_models.Person, error)
}

type personRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) PersonRepository {
	return &personRepository{
		db: db,
	}
}

func (p *personRepository) Insert(ctx context.Context, person *db_models.Person) error {
	return p.db.WithContext(ctx).Create(person).Error
}

func (p *personRepository) Update(ctx context.Context, person *db_models.Person) error {
	return p.db.WithContext(ctx).Save(person).Error
}

func (p *personRepository) FindByID(ctx context.Context, id string) (*db_models.Person, error) {
	var person db_models.Person
	err := p.db.WithContext(ctx).
		Preload("Proposals").
		Preload("Invoices", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoices.created_at ASC")
		}).
		Preload("Invoices.Items").
		Preload("Invoices.Payments").
		First(&person, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &person, nil
}

func (p *personRepository) FindByEmail(ctx context.Context, email string) (*db_models.Person, error) {
	var person db_models.Person
	err := p.db.WithContext(ctx).First(&person, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &person, nil
}

func (p *personRepository) FindByHandle(ctx context.Context, handle string) (*db_models.Person, error) {
	var person db_models.Person
	err := p.db.WithContext(ctx).First(&person, "handle = ?", handle).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &person, nil
}
